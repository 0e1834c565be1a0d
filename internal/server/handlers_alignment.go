package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/placement-prep/internal/alignment"
	"github.com/jonathan/placement-prep/internal/types"
)

// AlignmentRequest is the request body for POST /companies/{id}/alignment.
type AlignmentRequest struct {
	Name             string   `json:"name" validate:"required"`
	ProblemStatement string   `json:"problem_statement"`
	Technologies     []string `json:"technologies"`
	ArchitectureType string   `json:"architecture_type"`
	Domain           string   `json:"domain"`
	Description      string   `json:"description"`
}

// handleAlignment scores a project description against a company's strategy
func (s *Server) handleAlignment(w http.ResponseWriter, r *http.Request) {
	id, ok := companyID(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid company ID")
		return
	}

	var req AlignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	strategy, err := s.store.GetCompanyStrategy(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	project := types.Project{
		Name:             req.Name,
		ProblemStatement: req.ProblemStatement,
		Technologies:     req.Technologies,
		ArchitectureType: req.ArchitectureType,
		Domain:           req.Domain,
		Description:      req.Description,
	}

	s.jsonResponse(w, http.StatusOK, alignment.Score(project, strategy))
}
