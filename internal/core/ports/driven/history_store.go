package driven

import (
	"context"

	"github.com/talentdock/search-core/internal/core/domain"
)

// SearchHistoryStore is the write-mostly sink for executed searches
// (PostgreSQL, optionally fronted by a Redis suggestion cache).
type SearchHistoryStore interface {
	// Record persists one history entry and returns its ID.
	// Callers treat failures as non-fatal.
	Record(ctx context.Context, entry *domain.SearchHistoryEntry) (int64, error)

	// FindSimilarQueries returns past queries containing the given text
	// (case-insensitive), excluding the exact query itself, ordered by
	// usage count descending then query ascending.
	FindSimilarQueries(ctx context.Context, query string, limit int) ([]domain.QueryUsage, error)

	// Recent lists history entries newest first, optionally scoped to a candidate
	Recent(ctx context.Context, candidateID *int64, limit int) ([]*domain.SearchHistoryEntry, error)

	// Statistics aggregates usage over content searches
	Statistics(ctx context.Context) (*domain.SearchStatistics, error)
}
