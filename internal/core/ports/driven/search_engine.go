package driven

import (
	"context"

	"github.com/talentdock/search-core/internal/core/domain"
)

// SearchEngine scores, highlights and ranks a document corpus against a
// parsed query. The default implementation scans raw text at query time;
// the interface exists so an index-backed engine can be substituted
// without touching the orchestrator.
type SearchEngine interface {
	// Rank returns one result per matching document, sorted by relevance
	// score descending. Documents scoring zero are omitted. Ties keep
	// the input corpus order (stable sort).
	Rank(ctx context.Context, docs []*domain.Document, query *domain.SearchQuery, opts domain.RankOptions) ([]*domain.SearchResult, error)
}
