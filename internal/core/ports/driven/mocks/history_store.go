package mocks

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/talentdock/search-core/internal/core/domain"
)

// MockHistoryStore is an in-memory SearchHistoryStore for testing
type MockHistoryStore struct {
	mu      sync.RWMutex
	entries []*domain.SearchHistoryEntry
	nextID  int64

	// RecordErr forces Record to fail when set
	RecordErr error

	// SimilarErr forces FindSimilarQueries to fail when set
	SimilarErr error
}

// NewMockHistoryStore creates a new MockHistoryStore
func NewMockHistoryStore() *MockHistoryStore {
	return &MockHistoryStore{nextID: 1}
}

// Entries returns a snapshot of everything recorded so far
func (m *MockHistoryStore) Entries() []*domain.SearchHistoryEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.SearchHistoryEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

func (m *MockHistoryStore) Record(ctx context.Context, entry *domain.SearchHistoryEntry) (int64, error) {
	if m.RecordErr != nil {
		return 0, m.RecordErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stored := *entry
	stored.ID = m.nextID
	if stored.Timestamp.IsZero() {
		stored.Timestamp = time.Now()
	}
	m.nextID++
	m.entries = append(m.entries, &stored)
	return stored.ID, nil
}

func (m *MockHistoryStore) FindSimilarQueries(ctx context.Context, query string, limit int) ([]domain.QueryUsage, error) {
	if m.SimilarErr != nil {
		return nil, m.SimilarErr
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	counts := make(map[string]int)
	for _, e := range m.entries {
		if e.Query == query {
			continue
		}
		if !strings.Contains(strings.ToLower(e.Query), strings.ToLower(query)) {
			continue
		}
		counts[e.Query]++
	}

	usages := make([]domain.QueryUsage, 0, len(counts))
	for q, n := range counts {
		usages = append(usages, domain.QueryUsage{Query: q, UsageCount: n})
	}
	sort.Slice(usages, func(i, j int) bool {
		if usages[i].UsageCount != usages[j].UsageCount {
			return usages[i].UsageCount > usages[j].UsageCount
		}
		return usages[i].Query < usages[j].Query
	})

	if limit > 0 && len(usages) > limit {
		usages = usages[:limit]
	}
	return usages, nil
}

func (m *MockHistoryStore) Recent(ctx context.Context, candidateID *int64, limit int) ([]*domain.SearchHistoryEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*domain.SearchHistoryEntry
	for i := len(m.entries) - 1; i >= 0; i-- {
		e := m.entries[i]
		if candidateID != nil && (e.CandidateID == nil || *e.CandidateID != *candidateID) {
			continue
		}
		out = append(out, e)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (m *MockHistoryStore) Statistics(ctx context.Context) (*domain.SearchStatistics, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := &domain.SearchStatistics{GeneratedAt: time.Now()}
	unique := make(map[string]bool)
	var totalTime int64
	for _, e := range m.entries {
		if e.Type != domain.SearchTypeContent {
			continue
		}
		stats.TotalSearches++
		unique[e.Query] = true
		totalTime += e.SearchTimeMS
	}
	stats.UniqueQueries = len(unique)
	if stats.TotalSearches > 0 {
		stats.AverageSearchTimeMS = float64(totalTime) / float64(stats.TotalSearches)
	}
	return stats, nil
}
