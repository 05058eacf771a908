package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/talentdock/search-core/internal/core/domain"
	"github.com/talentdock/search-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.SearchHistoryStore = (*SuggestionCache)(nil)

const (
	suggestionPrefix = "suggest:"
	statsKey         = "search:stats"

	// DefaultSuggestionTTL bounds staleness of cached suggestion lists
	DefaultSuggestionTTL = 5 * time.Minute

	// DefaultStatsTTL bounds staleness of cached statistics
	DefaultStatsTTL = time.Minute
)

// SuggestionCache wraps a SearchHistoryStore with a Redis read-through
// cache for the query-shaped reads (suggestions and statistics).
// Writes go straight to the underlying store and invalidate the
// statistics snapshot; suggestion entries expire by TTL. Redis being
// unreachable never fails a read: the cache logs and falls through to
// the underlying store.
type SuggestionCache struct {
	client        *redis.Client
	store         driven.SearchHistoryStore
	logger        *slog.Logger
	suggestionTTL time.Duration
	statsTTL      time.Duration
}

// NewSuggestionCache creates a caching decorator around store
func NewSuggestionCache(client *redis.Client, store driven.SearchHistoryStore, logger *slog.Logger) *SuggestionCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &SuggestionCache{
		client:        client,
		store:         store,
		logger:        logger,
		suggestionTTL: DefaultSuggestionTTL,
		statsTTL:      DefaultStatsTTL,
	}
}

// Record appends to the underlying store and drops the cached statistics
func (c *SuggestionCache) Record(ctx context.Context, entry *domain.SearchHistoryEntry) (int64, error) {
	id, err := c.store.Record(ctx, entry)
	if err != nil {
		return 0, err
	}

	// Invalidation failure only extends staleness within the TTL
	c.client.Del(ctx, statsKey)

	return id, nil
}

// FindSimilarQueries serves cached suggestion lists, falling back to the store
func (c *SuggestionCache) FindSimilarQueries(ctx context.Context, query string, limit int) ([]domain.QueryUsage, error) {
	key := suggestionKey(query, limit)

	data, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var cached []domain.QueryUsage
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
		// Corrupt entry, fall through to the store
	} else if err != redis.Nil {
		c.logger.Warn("suggestion cache read failed, falling back to store", "error", err)
	}

	usages, err := c.store.FindSimilarQueries(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(usages); err == nil {
		c.client.Set(ctx, key, data, c.suggestionTTL)
	}

	return usages, nil
}

// Recent always reads through: history listings must reflect the latest writes
func (c *SuggestionCache) Recent(ctx context.Context, candidateID *int64, limit int) ([]*domain.SearchHistoryEntry, error) {
	return c.store.Recent(ctx, candidateID, limit)
}

// Statistics serves a cached snapshot, falling back to the store
func (c *SuggestionCache) Statistics(ctx context.Context) (*domain.SearchStatistics, error) {
	data, err := c.client.Get(ctx, statsKey).Bytes()
	if err == nil {
		var cached domain.SearchStatistics
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	} else if err != redis.Nil {
		c.logger.Warn("statistics cache read failed, falling back to store", "error", err)
	}

	stats, err := c.store.Statistics(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(stats); err == nil {
		c.client.Set(ctx, statsKey, data, c.statsTTL)
	}

	return stats, nil
}

// suggestionKey hashes the query so arbitrary user input never shapes key names
func suggestionKey(query string, limit int) string {
	sum := sha256.Sum256([]byte(strings.ToLower(query)))
	return fmt.Sprintf("%s%s:%d", suggestionPrefix, hex.EncodeToString(sum[:8]), limit)
}
