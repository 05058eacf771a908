package driven

import (
	"context"

	"github.com/talentdock/search-core/internal/core/domain"
)

// CandidateStore reads candidate profiles (PostgreSQL).
// The search core only needs lookups to validate scope filters;
// candidate CRUD belongs to the surrounding system.
type CandidateStore interface {
	// GetByID retrieves a candidate by ID, domain.ErrNotFound when absent
	GetByID(ctx context.Context, id int64) (*domain.Candidate, error)
}
