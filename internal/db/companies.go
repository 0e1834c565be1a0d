package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// GetCompanyByID retrieves a company by its UUID. Returns (nil, nil) when the
// company does not exist.
func (db *DB) GetCompanyByID(ctx context.Context, id uuid.UUID) (*Company, error) {
	var c Company
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, name_normalized, industry, COALESCE(rating, 0), created_at, updated_at
		 FROM companies WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.Name, &c.NameNormalized, &c.Industry, &c.Rating, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return &c, nil
}

// ListCompanies retrieves companies ordered by name, with the total count for
// pagination.
func (db *DB) ListCompanies(ctx context.Context, limit, offset int) ([]Company, int, error) {
	var total int
	if err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM companies`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count companies: %w", err)
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, name, name_normalized, industry, COALESCE(rating, 0), created_at, updated_at
		 FROM companies ORDER BY name LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	companies := make([]Company, 0, limit)
	for rows.Next() {
		var c Company
		if err := rows.Scan(&c.ID, &c.Name, &c.NameNormalized, &c.Industry, &c.Rating, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read companies: %w", err)
	}
	return companies, total, nil
}
