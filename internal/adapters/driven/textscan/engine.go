// Package textscan implements the SearchEngine port by scanning raw
// document text at query time. There is no index: scoring is
// O(documents x query terms), which is fine for corpora of extracted
// PDF text at modest scale.
package textscan

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/talentdock/search-core/internal/core/domain"
	"github.com/talentdock/search-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.SearchEngine = (*Engine)(nil)

// Engine scores and highlights documents over a bounded worker pool.
// Per-document work is read-only and independent, so documents are
// evaluated in parallel without locking.
type Engine struct {
	pool   *ants.Pool
	logger *slog.Logger
}

// Config holds engine configuration
type Config struct {
	// Concurrency bounds the worker pool; defaults to GOMAXPROCS
	Concurrency int
}

// NewEngine creates a text-scan engine with a bounded worker pool
func NewEngine(cfg Config, logger *slog.Logger) (*Engine, error) {
	if logger == nil {
		logger = slog.Default()
	}

	size := cfg.Concurrency
	if size <= 0 {
		size = runtime.GOMAXPROCS(0)
	}

	pool, err := ants.NewPool(size)
	if err != nil {
		return nil, fmt.Errorf("creating scoring pool: %w", err)
	}

	return &Engine{pool: pool, logger: logger}, nil
}

// Release frees the worker pool
func (e *Engine) Release() {
	e.pool.Release()
}

// Rank scores and highlights every document against the query, drops
// non-matches, and sorts descending by score. The sort is stable, so
// equal scores keep the corpus order handed in by the store.
func (e *Engine) Rank(ctx context.Context, docs []*domain.Document, query *domain.SearchQuery, opts domain.RankOptions) ([]*domain.SearchResult, error) {
	if len(docs) == 0 {
		return nil, nil
	}

	m := newMatcher(query)

	// Indexed slice keeps workers free of shared mutable state
	scored := make([]*domain.SearchResult, len(docs))
	var wg sync.WaitGroup

	for i, doc := range docs {
		wg.Add(1)
		if err := e.pool.Submit(func() {
			defer wg.Done()
			scored[i] = e.rankOne(m, doc, opts)
		}); err != nil {
			wg.Done()
			wg.Wait()
			return nil, fmt.Errorf("submitting scoring task: %w", err)
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ranked := make([]*domain.SearchResult, 0, len(docs))
	for _, r := range scored {
		if r != nil {
			ranked = append(ranked, r)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RelevanceScore > ranked[j].RelevanceScore
	})

	return ranked, nil
}

// rankOne returns nil for documents with no matches
func (e *Engine) rankOne(m *matcher, doc *domain.Document, opts domain.RankOptions) *domain.SearchResult {
	score, matches := m.score(doc.ExtractedText, doc.ContentLength)
	if score <= 0 {
		return nil
	}

	result := &domain.SearchResult{
		DocumentID:       doc.ID,
		CandidateID:      doc.CandidateID,
		CandidateName:    doc.CandidateName,
		OriginalFilename: doc.OriginalFilename,
		RelevanceScore:   math.Round(score*100) / 100,
		MatchCount:       matches,
		UploadDate:       doc.UploadDate,
		ExtractionDate:   doc.ExtractionDate,
		FileSize:         doc.FileSize,
	}

	if opts.IncludeHighlights {
		result.Highlights = m.highlights(doc.ExtractedText, opts.HighlightLength)
	}

	return result
}
