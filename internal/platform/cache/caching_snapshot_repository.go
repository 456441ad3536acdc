// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"astock_backend/internal/feature/watchlist/domain/entity"
	"astock_backend/internal/feature/watchlist/usecase"
)

// CachingSnapshotRepository decorates a SnapshotRepository with Redis caching.
// 全市場スナップショットは最も重いプロバイダ呼び出しのため、短いTTLでキャッシュします。
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository.
type CachingSnapshotRepository struct {
	inner usecase.SnapshotRepository
	rdb   *redis.Client
	ttl   time.Duration
	key   string
}

var _ usecase.SnapshotRepository = (*CachingSnapshotRepository)(nil)

// NewCachingSnapshotRepository decorates a SnapshotRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If key is empty, it uses "market:snapshot".
func NewCachingSnapshotRepository(rdb *redis.Client, ttl time.Duration, inner usecase.SnapshotRepository, key string) *CachingSnapshotRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if key == "" {
		key = "market:snapshot"
	}
	return &CachingSnapshotRepository{
		inner: inner,
		rdb:   rdb,
		ttl:   ttl,
		key:   key,
	}
}

// Snapshot retrieves the market snapshot, checking cache first then falling
// back to the provider.
func (c *CachingSnapshotRepository) Snapshot(ctx context.Context) ([]entity.SnapshotRow, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Snapshot(ctx)
	}

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, c.key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.SnapshotRow
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, c.key).Err()
	}

	// 2) Fallback to provider
	out, err := c.inner.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, c.key, b, c.ttl).Err()
	}

	return out, nil
}
