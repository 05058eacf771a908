package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/talentdock/search-core/internal/core/domain"
	"github.com/talentdock/search-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.CandidateStore = (*CandidateStore)(nil)

// CandidateStore implements driven.CandidateStore using PostgreSQL
type CandidateStore struct {
	db *DB
}

// NewCandidateStore creates a new CandidateStore
func NewCandidateStore(db *DB) *CandidateStore {
	return &CandidateStore{db: db}
}

// GetByID retrieves a candidate by ID
func (s *CandidateStore) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	query := `
		SELECT id, first_name, last_name, email, file_status, created_at, updated_at
		FROM candidates
		WHERE id = $1
	`

	var c domain.Candidate
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID,
		&c.FirstName,
		&c.LastName,
		&c.Email,
		&c.FileStatus,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}
