package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/talentdock/search-core/internal/core/domain"
)

// MockDocumentStore is an in-memory DocumentStore for testing.
// Query honors the candidate/extracted filters and the upload-date
// descending order the real store guarantees.
type MockDocumentStore struct {
	mu        sync.RWMutex
	documents []*domain.Document

	// QueryErr forces Query to fail when set
	QueryErr error
}

// NewMockDocumentStore creates a new MockDocumentStore
func NewMockDocumentStore() *MockDocumentStore {
	return &MockDocumentStore{}
}

// Add seeds a document
func (m *MockDocumentStore) Add(doc *domain.Document) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.documents = append(m.documents, doc)
}

func (m *MockDocumentStore) Query(ctx context.Context, filter domain.DocumentFilter) ([]*domain.Document, error) {
	if m.QueryErr != nil {
		return nil, m.QueryErr
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var docs []*domain.Document
	for _, doc := range m.documents {
		if filter.CandidateID != nil && doc.CandidateID != *filter.CandidateID {
			continue
		}
		if filter.ExtractedOnly && !doc.IsExtracted {
			continue
		}
		docs = append(docs, doc)
	}

	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].UploadDate.After(docs[j].UploadDate)
	})

	return docs, nil
}
