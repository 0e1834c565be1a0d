package db

import (
	"time"

	"github.com/google/uuid"
)

// Company represents a canonical company record in the directory.
type Company struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	NameNormalized string    `json:"name_normalized"`
	Industry       *string   `json:"industry,omitempty"`
	Rating         float64   `json:"rating"` // 0-5 star rating, 0 when unrated
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
