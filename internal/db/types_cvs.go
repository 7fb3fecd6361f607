package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/cv-builder/internal/types"
)

// CVRecord is a stored CV with its persistence metadata. The document itself
// lives in CV; the remaining fields mirror the lifted columns.
type CVRecord struct {
	ID        uuid.UUID `json:"id"`
	CV        types.CV  `json:"cv"`
	Status    types.CVStatus
	Viewed    bool
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CVSummary is a lightweight view of a CV for admin listings
type CVSummary struct {
	ID        uuid.UUID      `json:"id"`
	FullName  string         `json:"fullName"`
	Status    types.CVStatus `json:"status"`
	Viewed    bool           `json:"viewed"`
	CreatedAt time.Time      `json:"createdAt"`
}

// CVFilters holds optional filters for listing CVs
type CVFilters struct {
	Status types.CVStatus
	Viewed *bool
	Search string // case-insensitive match against the candidate name
	Limit  int
}

// Admin represents an administrator account
type Admin struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize to JSON
	CreatedAt    time.Time `json:"created_at"`
}
