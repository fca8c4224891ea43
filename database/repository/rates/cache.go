package ratesRepo

import (
	"context"
	"encoding/json"
	"time"

	"tripdesk/models"

	"github.com/go-redis/redis/v8"
)

const snapshotCacheKey = "rates:snapshot"

// CachedRateRepo decorates a RateRepository with a redis snapshot cache.
// Writes invalidate the cached snapshot so pricing always sees fresh rates
// after an ingestion run.
type CachedRateRepo struct {
	Inner RateRepository
	Cache *redis.Client
	TTL   time.Duration
}

// NewCachedRateRepo wraps the given repository with a snapshot cache.
func NewCachedRateRepo(inner RateRepository, cache *redis.Client, ttl time.Duration) *CachedRateRepo {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachedRateRepo{Inner: inner, Cache: cache, TTL: ttl}
}

func (c *CachedRateRepo) Create(ctx context.Context, rec models.RateRecord) (string, error) {
	id, err := c.Inner.Create(ctx, rec)
	if err == nil {
		c.Cache.Del(ctx, snapshotCacheKey)
	}
	return id, err
}

func (c *CachedRateRepo) CreateMany(ctx context.Context, recs []models.RateRecord) (int, error) {
	n, err := c.Inner.CreateMany(ctx, recs)
	if err == nil {
		c.Cache.Del(ctx, snapshotCacheKey)
	}
	return n, err
}

func (c *CachedRateRepo) Snapshot(ctx context.Context) (models.RateCatalog, error) {
	if data, err := c.Cache.Get(ctx, snapshotCacheKey).Result(); err == nil {
		var catalog models.RateCatalog
		if err := json.Unmarshal([]byte(data), &catalog); err == nil {
			return catalog, nil
		}
		// Corrupt cache entry; fall through to the source of truth.
		c.Cache.Del(ctx, snapshotCacheKey)
	}

	catalog, err := c.Inner.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(catalog); err == nil {
		c.Cache.Set(ctx, snapshotCacheKey, data, c.TTL)
	}
	return catalog, nil
}

func (c *CachedRateRepo) DeleteAll(ctx context.Context) (int64, error) {
	n, err := c.Inner.DeleteAll(ctx)
	if err == nil {
		c.Cache.Del(ctx, snapshotCacheKey)
	}
	return n, err
}
