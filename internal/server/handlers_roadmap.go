package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/placement-prep/internal/db"
	"github.com/jonathan/placement-prep/internal/roadmap"
	"github.com/jonathan/placement-prep/internal/types"
)

// RoadmapRequest is the request body for POST /companies/{id}/roadmap.
// Self-ratings are keyed by skill UUID on the student's 1-10 scale. The week
// budget is range-checked here because the engine itself does not clamp it.
type RoadmapRequest struct {
	SelfRatings      map[string]int `json:"self_ratings" validate:"required,dive,min=1,max=10"`
	AvailableWeeks   int            `json:"available_weeks" validate:"required,min=1,max=52"`
	IncludeNarrative bool           `json:"include_narrative,omitempty"`
}

// handleRoadmap generates a study roadmap for a company
func (s *Server) handleRoadmap(w http.ResponseWriter, r *http.Request) {
	id, ok := companyID(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid company ID")
		return
	}

	var req RoadmapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	ratings := make(types.SelfRatings, len(req.SelfRatings))
	for key, rating := range req.SelfRatings {
		skillID, err := uuid.Parse(key)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid skill ID in self_ratings: "+key)
			return
		}
		ratings[skillID] = rating
	}

	var (
		company      *db.Company
		requirements []types.SkillRequirement
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		company, err = s.store.GetCompanyByID(ctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		requirements, err = s.store.GetSkillRequirements(ctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if company == nil {
		s.errorResponse(w, http.StatusNotFound, "Company not found")
		return
	}

	result := roadmap.Generate(requirements, ratings, req.AvailableWeeks, company.Rating)
	if req.IncludeNarrative {
		roadmap.Enrich(r.Context(), s.generator, company.Name, result, req.AvailableWeeks)
	}

	s.jsonResponse(w, http.StatusOK, result)
}
