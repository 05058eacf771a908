package driven

import (
	"context"

	"github.com/talentdock/search-core/internal/core/domain"
)

// DocumentStore reads the document corpus (PostgreSQL).
// Documents carry their full extracted text; the store never returns
// partial content.
type DocumentStore interface {
	// Query retrieves documents matching the filter, ordered by upload
	// date descending. The order is significant: it is the tie-break
	// order for equal relevance scores downstream.
	Query(ctx context.Context, filter domain.DocumentFilter) ([]*domain.Document, error)
}
