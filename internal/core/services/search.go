package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/talentdock/search-core/internal/core/domain"
	"github.com/talentdock/search-core/internal/core/ports/driven"
	"github.com/talentdock/search-core/internal/core/ports/driving"
	"github.com/talentdock/search-core/internal/metrics"
)

const (
	// suggestionLimit caps the alternate queries attached to a result page
	suggestionLimit = 5

	// defaultHistoryLimit is the page size for history listings
	defaultHistoryLimit = 50
)

// Ensure searchService implements SearchService
var _ driving.SearchService = (*searchService)(nil)

// searchService implements the SearchService interface.
// It holds no per-request state: every search is a pure computation
// over the corpus the document store hands back.
type searchService struct {
	candidateStore driven.CandidateStore
	documentStore  driven.DocumentStore
	historyStore   driven.SearchHistoryStore
	engine         driven.SearchEngine
	logger         *slog.Logger
}

// NewSearchService creates a new SearchService
func NewSearchService(
	candidateStore driven.CandidateStore,
	documentStore driven.DocumentStore,
	historyStore driven.SearchHistoryStore,
	engine driven.SearchEngine,
	logger *slog.Logger,
) driving.SearchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &searchService{
		candidateStore: candidateStore,
		documentStore:  documentStore,
		historyStore:   historyStore,
		engine:         engine,
		logger:         logger,
	}
}

// Search performs a ranked, highlighted, paginated content search
func (s *searchService) Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error) {
	return s.search(ctx, req, domain.SearchTypeContent)
}

func (s *searchService) search(ctx context.Context, req domain.SearchRequest, searchType domain.SearchType) (*domain.SearchResponse, error) {
	start := time.Now()
	req.Normalize()

	// Validation failures are detected before any scoring work begins
	// and are never recorded as failed searches.
	if req.CandidateID != nil {
		if _, err := s.candidateStore.GetByID(ctx, *req.CandidateID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("candidate %d: %w", *req.CandidateID, domain.ErrNotFound)
			}
			s.recordFailure(ctx, req, start)
			return nil, fmt.Errorf("validating candidate: %w", err)
		}
	}

	query, err := domain.ParseQuery(req.Query)
	if err != nil {
		return nil, err
	}

	docs, err := s.documentStore.Query(ctx, domain.DocumentFilter{
		CandidateID:   req.CandidateID,
		ExtractedOnly: req.ExtractedOnly,
	})
	if err != nil {
		s.recordFailure(ctx, req, start)
		return nil, fmt.Errorf("querying document corpus: %w", err)
	}

	ranked, err := s.engine.Rank(ctx, docs, query, domain.RankOptions{
		IncludeHighlights: req.IncludeHighlights,
		HighlightLength:   req.HighlightLength,
	})
	if err != nil {
		s.recordFailure(ctx, req, start)
		return nil, fmt.Errorf("ranking documents: %w", err)
	}

	total := len(ranked)
	page := pageSlice(ranked, req.Offset, req.Limit)
	info := domain.Paginate(total, req.Offset, req.Limit)
	elapsed := time.Since(start)

	s.recordHistory(ctx, &domain.SearchHistoryEntry{
		Query:        req.Query,
		CandidateID:  req.CandidateID,
		ResultsCount: total,
		SearchTimeMS: elapsed.Milliseconds(),
		Type:         searchType,
	})

	metrics.ObserveSearch(string(searchType), elapsed, total)

	return &domain.SearchResponse{
		Query:        req.Query,
		CandidateID:  req.CandidateID,
		TotalResults: total,
		SearchTimeMS: elapsed.Milliseconds(),
		Page:         info.Page,
		PerPage:      req.Limit,
		TotalPages:   info.TotalPages,
		HasNext:      info.HasNext,
		HasPrevious:  info.HasPrevious,
		Results:      page,
		Suggestions:  s.suggestions(ctx, req.Query),
	}, nil
}

// QuickSearch runs a highlight-free search and returns slim results
func (s *searchService) QuickSearch(ctx context.Context, query string, candidateID *int64, limit int) ([]*domain.QuickSearchResult, error) {
	req := domain.DefaultSearchRequest(query)
	req.CandidateID = candidateID
	req.IncludeHighlights = false
	if limit > 0 {
		req.Limit = limit
	}

	resp, err := s.search(ctx, req, domain.SearchTypeQuick)
	if err != nil {
		return nil, err
	}

	results := make([]*domain.QuickSearchResult, 0, len(resp.Results))
	for _, r := range resp.Results {
		results = append(results, &domain.QuickSearchResult{
			DocumentID:     r.DocumentID,
			CandidateName:  r.CandidateName,
			Filename:       r.OriginalFilename,
			RelevanceScore: r.RelevanceScore,
			MatchCount:     r.MatchCount,
		})
	}
	return results, nil
}

// Suggest returns up to limit alternate queries drawn from history
func (s *searchService) Suggest(ctx context.Context, query string, limit int) ([]string, error) {
	if limit <= 0 || limit > suggestionLimit {
		limit = suggestionLimit
	}

	usages, err := s.historyStore.FindSimilarQueries(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("fetching suggestions: %w", err)
	}

	suggestions := make([]string, 0, len(usages))
	for _, u := range usages {
		suggestions = append(suggestions, u.Query)
	}
	return suggestions, nil
}

// History lists recent searches, optionally scoped to a candidate
func (s *searchService) History(ctx context.Context, candidateID *int64, limit int) ([]*domain.SearchHistoryEntry, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	entries, err := s.historyStore.Recent(ctx, candidateID, limit)
	if err != nil {
		return nil, fmt.Errorf("fetching search history: %w", err)
	}
	return entries, nil
}

// Statistics aggregates search usage from history
func (s *searchService) Statistics(ctx context.Context) (*domain.SearchStatistics, error) {
	stats, err := s.historyStore.Statistics(ctx)
	if err != nil {
		return nil, fmt.Errorf("computing search statistics: %w", err)
	}
	return stats, nil
}

// recordHistory writes a history entry; a failure must never fail the search
func (s *searchService) recordHistory(ctx context.Context, entry *domain.SearchHistoryEntry) {
	if _, err := s.historyStore.Record(ctx, entry); err != nil {
		s.logger.Warn("failed to record search history",
			"query", entry.Query,
			"error", err,
		)
	}
}

// recordFailure tags a broken pipeline run in history, best-effort
func (s *searchService) recordFailure(ctx context.Context, req domain.SearchRequest, start time.Time) {
	s.recordHistory(ctx, &domain.SearchHistoryEntry{
		Query:        req.Query,
		CandidateID:  req.CandidateID,
		ResultsCount: 0,
		SearchTimeMS: time.Since(start).Milliseconds(),
		Type:         domain.SearchTypeFailed,
	})
}

// suggestions fetches alternate queries, degrading to none on failure
func (s *searchService) suggestions(ctx context.Context, query string) []string {
	usages, err := s.historyStore.FindSimilarQueries(ctx, query, suggestionLimit)
	if err != nil {
		s.logger.Warn("failed to fetch search suggestions", "error", err)
		return []string{}
	}

	suggestions := make([]string, 0, len(usages))
	for _, u := range usages {
		suggestions = append(suggestions, u.Query)
	}
	return suggestions
}

// pageSlice applies offset/limit slicing to the ranked results
func pageSlice(results []*domain.SearchResult, offset, limit int) []*domain.SearchResult {
	if offset >= len(results) {
		return []*domain.SearchResult{}
	}
	end := offset + limit
	if end > len(results) {
		end = len(results)
	}
	return results[offset:end]
}
