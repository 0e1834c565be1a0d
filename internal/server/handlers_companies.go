package server

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/placement-prep/internal/db"
	"github.com/jonathan/placement-prep/internal/types"
)

// parseQueryInt parses an integer query parameter with default and max values
func parseQueryInt(r *http.Request, key string, defaultValue, maxValue int) int {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val < 0 {
		return defaultValue
	}
	if maxValue > 0 && val > maxValue {
		return maxValue
	}
	return val
}

// companyID extracts and parses the {id} path value
func companyID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	return id, err == nil
}

// handleListCompanies lists the company directory
func (s *Server) handleListCompanies(w http.ResponseWriter, r *http.Request) {
	limit := parseQueryInt(r, "limit", 50, 100)
	offset := parseQueryInt(r, "offset", 0, 0)

	companies, total, err := s.store.ListCompanies(r.Context(), limit, offset)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"companies": companies,
		"total":     total,
		"limit":     limit,
		"offset":    offset,
	})
}

// handleGetCompany retrieves one company with its skill requirements and
// strategy payload, fetched concurrently.
func (s *Server) handleGetCompany(w http.ResponseWriter, r *http.Request) {
	id, ok := companyID(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid company ID")
		return
	}

	var (
		company      *db.Company
		requirements []types.SkillRequirement
		strategy     *types.CompanyStrategy
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
	g.Go(func() error {
		var err error
		strategy, err = s.store.GetCompanyStrategy(ctx, id)
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

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"company":            company,
		"skill_requirements": requirements,
		"strategy":           strategy,
	})
}

// handleCompanySkills retrieves a company's skill requirements
func (s *Server) handleCompanySkills(w http.ResponseWriter, r *http.Request) {
	id, ok := companyID(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid company ID")
		return
	}

	requirements, err := s.store.GetSkillRequirements(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"company_id": id,
		"skills":     requirements,
	})
}
