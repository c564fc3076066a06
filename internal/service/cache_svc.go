package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/ca-io-systems/YT-Trends/internal/metrics"
	"github.com/ca-io-systems/YT-Trends/internal/model"
	"github.com/ca-io-systems/YT-Trends/pkg/hash"
)

// CacheService is an optional Redis cache-aside layer for the per-region
// category taxonomy. A zero CacheService (nil client) turns every operation
// into a no-op.
type CacheService struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewCacheService connects to redisURL. If the URL is empty or invalid, or
// Redis is unreachable, it returns a disabled CacheService.
func NewCacheService(redisURL string, ttl time.Duration, log zerolog.Logger) *CacheService {
	if redisURL == "" || ttl <= 0 {
		log.Info().Msg("redis: category cache disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Warn().Err(err).Msg("redis: invalid URL, category cache disabled")
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("redis: connection failed, category cache disabled")
		_ = rdb.Close()
		return &CacheService{}
	}

	log.Info().Str("addr", opts.Addr).Dur("ttl", ttl).Msg("redis: connected, category cache enabled")
	return &CacheService{rdb: rdb, ttl: ttl}
}

// NewCacheServiceWithClient wraps an existing client.
func NewCacheServiceWithClient(rdb *redis.Client, ttl time.Duration) *CacheService {
	return &CacheService{rdb: rdb, ttl: ttl}
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (c *CacheService) Client() *redis.Client {
	if c == nil {
		return nil
	}
	return c.rdb
}

// GetCategories returns the cached taxonomy for region. ok is false on a miss
// or when caching is disabled.
func (c *CacheService) GetCategories(ctx context.Context, region string) ([]model.Category, bool, error) {
	if c == nil || c.rdb == nil {
		return nil, false, nil
	}
	data, err := c.rdb.Get(ctx, categoriesKey(region)).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.CacheMisses.Inc()
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var entries []cachedCategory
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, false, err
	}
	metrics.CacheHits.Inc()

	cats := make([]model.Category, 0, len(entries))
	for _, e := range entries {
		cats = append(cats, model.Category{ID: e.ID, Title: e.Title, Assignable: e.Assignable})
	}
	return cats, true, nil
}

// SetCategories stores the taxonomy for region.
func (c *CacheService) SetCategories(ctx context.Context, region string, cats []model.Category) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	entries := make([]cachedCategory, 0, len(cats))
	for _, cat := range cats {
		entries = append(entries, cachedCategory{ID: cat.ID, Title: cat.Title, Assignable: cat.Assignable})
	}
	b, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, categoriesKey(region), b, c.ttl).Err()
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

// cachedCategory keeps Assignable, which model.Category hides from JSON.
type cachedCategory struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Assignable bool   `json:"assignable"`
}

func categoriesKey(region string) string {
	return hash.CacheKey("yttrends:categories", region)
}
