package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/talentdock/search-core/internal/core/domain"
	"github.com/talentdock/search-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.SearchHistoryStore = (*HistoryStore)(nil)

const (
	popularQueryLimit = 10
	trendDays         = 7
)

// HistoryStore implements driven.SearchHistoryStore using PostgreSQL
type HistoryStore struct {
	db *DB
}

// NewHistoryStore creates a new HistoryStore
func NewHistoryStore(db *DB) *HistoryStore {
	return &HistoryStore{db: db}
}

// Record appends one executed search to the history
func (s *HistoryStore) Record(ctx context.Context, entry *domain.SearchHistoryEntry) (int64, error) {
	query := `
		INSERT INTO search_history (query, candidate_id, results_count, search_time_ms, search_type, search_timestamp)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	ts := entry.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	var id int64
	err := s.db.QueryRowContext(ctx, query,
		entry.Query,
		NullInt64(entry.CandidateID),
		entry.ResultsCount,
		entry.SearchTimeMS,
		string(entry.Type),
		ts,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// FindSimilarQueries returns past queries containing the given query,
// most used first. Failed searches and the query itself are excluded.
func (s *HistoryStore) FindSimilarQueries(ctx context.Context, query string, limit int) ([]domain.QueryUsage, error) {
	stmt := `
		SELECT query, COUNT(*) AS usage_count, AVG(results_count) AS avg_results
		FROM search_history
		WHERE query ILIKE '%' || $1 || '%'
		  AND LOWER(query) <> LOWER($1)
		  AND search_type <> $2
		GROUP BY query
		ORDER BY usage_count DESC, query ASC
		LIMIT $3
	`

	rows, err := s.db.QueryContext(ctx, stmt, query, string(domain.SearchTypeFailed), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var usages []domain.QueryUsage
	for rows.Next() {
		var u domain.QueryUsage
		if err := rows.Scan(&u.Query, &u.UsageCount, &u.AvgResults); err != nil {
			return nil, err
		}
		usages = append(usages, u)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return usages, nil
}

// Recent lists history entries newest first, optionally scoped to a candidate
func (s *HistoryStore) Recent(ctx context.Context, candidateID *int64, limit int) ([]*domain.SearchHistoryEntry, error) {
	stmt := `
		SELECT id, query, candidate_id, results_count, search_time_ms, search_type, search_timestamp
		FROM search_history
		WHERE ($1::bigint IS NULL OR candidate_id = $1)
		ORDER BY search_timestamp DESC
		LIMIT $2
	`

	rows, err := s.db.QueryContext(ctx, stmt, NullInt64(candidateID), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.SearchHistoryEntry
	for rows.Next() {
		var e domain.SearchHistoryEntry
		var cid sql.NullInt64
		err := rows.Scan(&e.ID, &e.Query, &cid, &e.ResultsCount, &e.SearchTimeMS, &e.Type, &e.Timestamp)
		if err != nil {
			return nil, err
		}
		e.CandidateID = Int64Ptr(cid)
		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// Statistics aggregates content search usage: totals, popular queries
// and a daily trend over the last week
func (s *HistoryStore) Statistics(ctx context.Context) (*domain.SearchStatistics, error) {
	stats := &domain.SearchStatistics{GeneratedAt: time.Now()}

	totals := `
		SELECT COUNT(*), COUNT(DISTINCT query), COALESCE(AVG(search_time_ms), 0)
		FROM search_history
		WHERE search_type = $1
	`
	err := s.db.QueryRowContext(ctx, totals, string(domain.SearchTypeContent)).Scan(
		&stats.TotalSearches,
		&stats.UniqueQueries,
		&stats.AverageSearchTimeMS,
	)
	if err != nil {
		return nil, err
	}

	popular := `
		SELECT query, COUNT(*) AS usage_count, AVG(results_count) AS avg_results
		FROM search_history
		WHERE search_type = $1
		GROUP BY query
		ORDER BY usage_count DESC, query ASC
		LIMIT $2
	`
	rows, err := s.db.QueryContext(ctx, popular, string(domain.SearchTypeContent), popularQueryLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var u domain.QueryUsage
		if err := rows.Scan(&u.Query, &u.UsageCount, &u.AvgResults); err != nil {
			return nil, err
		}
		stats.PopularQueries = append(stats.PopularQueries, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	trends := `
		SELECT TO_CHAR(search_timestamp::date, 'YYYY-MM-DD') AS day,
		       COUNT(*), COALESCE(AVG(search_time_ms), 0)
		FROM search_history
		WHERE search_type = $1
		  AND search_timestamp >= NOW() - ($2 || ' days')::interval
		GROUP BY day
		ORDER BY day DESC
	`
	trendRows, err := s.db.QueryContext(ctx, trends, string(domain.SearchTypeContent), trendDays)
	if err != nil {
		return nil, err
	}
	defer trendRows.Close()

	for trendRows.Next() {
		var t domain.SearchTrend
		if err := trendRows.Scan(&t.Date, &t.Searches, &t.AvgTimeMS); err != nil {
			return nil, err
		}
		stats.Trends = append(stats.Trends, t)
	}
	if err := trendRows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
