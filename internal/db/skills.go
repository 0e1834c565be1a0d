package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/placement-prep/internal/types"
)

// GetSkillRequirements retrieves the skill requirements a company expects,
// ordered by weight descending. Returns an empty slice when the company has no
// recorded requirements; "not found" is never an error.
func (db *DB) GetSkillRequirements(ctx context.Context, companyID uuid.UUID) ([]types.SkillRequirement, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, code, required_level, weight, COALESCE(topics, '')
		 FROM skill_requirements WHERE company_id = $1
		 ORDER BY weight DESC, name`,
		companyID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query skill requirements: %w", err)
	}
	defer rows.Close()

	requirements := []types.SkillRequirement{}
	for rows.Next() {
		var req types.SkillRequirement
		if err := rows.Scan(&req.ID, &req.Name, &req.Code, &req.RequiredLevel, &req.Weight, &req.Topics); err != nil {
			return nil, fmt.Errorf("failed to scan skill requirement: %w", err)
		}
		req.ProficiencyCode = types.ProficiencyCode(req.RequiredLevel)
		requirements = append(requirements, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read skill requirements: %w", err)
	}
	return requirements, nil
}
