package domain

import (
	"math"
	"time"
)

// Search request bounds, mirrored by the API validation layer
const (
	DefaultSearchLimit     = 20
	MaxSearchLimit         = 100
	DefaultHighlightLength = 150
	MinHighlightLength     = 50
	MaxHighlightLength     = 500
	MaxQueryLength         = 500
)

// SearchType tags a history entry with the kind of search that produced it
type SearchType string

const (
	SearchTypeContent SearchType = "content_search"
	SearchTypeQuick   SearchType = "quick_search"
	SearchTypeFailed  SearchType = "failed_search"
)

// SearchRequest configures a document content search
type SearchRequest struct {
	Query             string `json:"query" validate:"required,min=1,max=500"`
	CandidateID       *int64 `json:"candidate_id,omitempty" validate:"omitempty,gt=0"`
	ExtractedOnly     bool   `json:"extracted_only"`
	Limit             int    `json:"limit" validate:"omitempty,min=1,max=100"`
	Offset            int    `json:"offset" validate:"omitempty,min=0"`
	IncludeHighlights bool   `json:"include_highlights"`
	HighlightLength   int    `json:"highlight_length" validate:"omitempty,min=50,max=500"`
}

// DefaultSearchRequest returns a request with the documented defaults applied
func DefaultSearchRequest(query string) SearchRequest {
	return SearchRequest{
		Query:             query,
		ExtractedOnly:     true,
		Limit:             DefaultSearchLimit,
		IncludeHighlights: true,
		HighlightLength:   DefaultHighlightLength,
	}
}

// Normalize clamps unset or out-of-range fields to their defaults
func (r *SearchRequest) Normalize() {
	if r.Limit <= 0 {
		r.Limit = DefaultSearchLimit
	}
	if r.Limit > MaxSearchLimit {
		r.Limit = MaxSearchLimit
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	if r.HighlightLength <= 0 {
		r.HighlightLength = DefaultHighlightLength
	}
	if r.HighlightLength < MinHighlightLength {
		r.HighlightLength = MinHighlightLength
	}
	if r.HighlightLength > MaxHighlightLength {
		r.HighlightLength = MaxHighlightLength
	}
}

// RankOptions configures per-document highlighting during ranking
type RankOptions struct {
	IncludeHighlights bool
	HighlightLength   int
}

// Highlight is a context snippet around a match, with ellipsis markers
// when truncated
type Highlight struct {
	Text          string `json:"text"`
	StartPosition int    `json:"start_position"`
}

// SearchResult is one scored document in a result set.
// It exists only for the duration of a single search call.
type SearchResult struct {
	DocumentID       int64       `json:"document_id"`
	CandidateID      int64       `json:"candidate_id"`
	CandidateName    string      `json:"candidate_name"`
	OriginalFilename string      `json:"original_filename"`
	RelevanceScore   float64     `json:"relevance_score"`
	MatchCount       int         `json:"match_count"`
	Highlights       []Highlight `json:"highlights,omitempty"`
	UploadDate       time.Time   `json:"upload_date"`
	ExtractionDate   *time.Time  `json:"extraction_date,omitempty"`
	FileSize         int64       `json:"file_size,omitempty"`
}

// QuickSearchResult is the slim shape returned by quick search
type QuickSearchResult struct {
	DocumentID     int64   `json:"document_id"`
	CandidateName  string  `json:"candidate_name"`
	Filename       string  `json:"filename"`
	RelevanceScore float64 `json:"relevance_score"`
	MatchCount     int     `json:"match_count"`
}

// SearchResponse is a paginated, ranked result page
type SearchResponse struct {
	Query        string          `json:"query"`
	CandidateID  *int64          `json:"candidate_id,omitempty"`
	TotalResults int             `json:"total_results"`
	SearchTimeMS int64           `json:"search_time_ms"`
	Page         int             `json:"page"`
	PerPage      int             `json:"per_page"`
	TotalPages   int             `json:"total_pages"`
	HasNext      bool            `json:"has_next"`
	HasPrevious  bool            `json:"has_previous"`
	Results      []*SearchResult `json:"results"`
	Suggestions  []string        `json:"search_suggestions"`
}

// PageInfo holds pagination metadata derived from offset/limit slicing
type PageInfo struct {
	Page        int
	TotalPages  int
	HasNext     bool
	HasPrevious bool
}

// Paginate computes pagination metadata for a result set of total items
// sliced at offset with the given page size. limit must be positive.
func Paginate(total, offset, limit int) PageInfo {
	info := PageInfo{
		Page:        offset/limit + 1,
		TotalPages:  1,
		HasNext:     offset+limit < total,
		HasPrevious: offset > 0,
	}
	if total > 0 {
		info.TotalPages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return info
}

// SearchHistoryEntry records one executed search in the history sink
type SearchHistoryEntry struct {
	ID           int64      `json:"id"`
	Query        string     `json:"query"`
	CandidateID  *int64     `json:"candidate_id,omitempty"`
	ResultsCount int        `json:"results_count"`
	SearchTimeMS int64      `json:"search_time_ms"`
	Timestamp    time.Time  `json:"search_timestamp"`
	Type         SearchType `json:"search_type"`
}

// QueryUsage is an aggregated past query with its usage count
type QueryUsage struct {
	Query      string  `json:"query"`
	UsageCount int     `json:"usage_count"`
	AvgResults float64 `json:"avg_results,omitempty"`
}

// SearchTrend is one day of aggregated search activity
type SearchTrend struct {
	Date      string  `json:"date"`
	Searches  int     `json:"searches"`
	AvgTimeMS float64 `json:"avg_time_ms"`
}

// SearchStatistics summarizes historical search usage
type SearchStatistics struct {
	TotalSearches       int           `json:"total_searches"`
	UniqueQueries       int           `json:"unique_queries"`
	AverageSearchTimeMS float64       `json:"average_search_time_ms"`
	PopularQueries      []QueryUsage  `json:"popular_queries"`
	Trends              []SearchTrend `json:"search_trends"`
	GeneratedAt         time.Time     `json:"generated_at"`
}
