package driving

import (
	"context"

	"github.com/talentdock/search-core/internal/core/domain"
)

// SearchService handles document content search operations
type SearchService interface {
	// Search performs a ranked, highlighted, paginated content search
	Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error)

	// QuickSearch runs a highlight-free search and returns slim results
	QuickSearch(ctx context.Context, query string, candidateID *int64, limit int) ([]*domain.QuickSearchResult, error)

	// Suggest returns up to limit alternate queries drawn from history
	Suggest(ctx context.Context, query string, limit int) ([]string, error)

	// History lists recent searches, optionally scoped to a candidate
	History(ctx context.Context, candidateID *int64, limit int) ([]*domain.SearchHistoryEntry, error)

	// Statistics aggregates search usage from history
	Statistics(ctx context.Context) (*domain.SearchStatistics, error)
}
