package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/placement-prep/internal/types"
)

// GetCompanyStrategy retrieves a company's innovation-strategy payload from
// its JSONB column. Returns (nil, nil) when the company has no strategy
// record; the alignment scorer treats a nil payload as empty sections.
func (db *DB) GetCompanyStrategy(ctx context.Context, companyID uuid.UUID) (*types.CompanyStrategy, error) {
	var payload []byte
	err := db.pool.QueryRow(ctx,
		`SELECT payload FROM company_strategies WHERE company_id = $1`,
		companyID,
	).Scan(&payload)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get company strategy: %w", err)
	}

	if len(payload) == 0 {
		return &types.CompanyStrategy{}, nil
	}

	var strategy types.CompanyStrategy
	if err := json.Unmarshal(payload, &strategy); err != nil {
		return nil, fmt.Errorf("failed to parse strategy payload: %w", err)
	}
	return &strategy, nil
}
