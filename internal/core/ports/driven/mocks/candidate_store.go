package mocks

import (
	"context"
	"sync"

	"github.com/talentdock/search-core/internal/core/domain"
)

// MockCandidateStore is an in-memory CandidateStore for testing
type MockCandidateStore struct {
	mu         sync.RWMutex
	candidates map[int64]*domain.Candidate

	// GetErr forces GetByID to fail when set
	GetErr error
}

// NewMockCandidateStore creates a new MockCandidateStore
func NewMockCandidateStore() *MockCandidateStore {
	return &MockCandidateStore{
		candidates: make(map[int64]*domain.Candidate),
	}
}

// Add seeds a candidate, applying the schema default for file status
func (m *MockCandidateStore) Add(c *domain.Candidate) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c.FileStatus == "" {
		c.FileStatus = domain.FileStatusNone
	}
	m.candidates[c.ID] = c
}

func (m *MockCandidateStore) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.candidates[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}
