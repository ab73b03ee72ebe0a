// internal/cache/results.go
package cache

import (
	"context"
	"encoding/json"
	"time"

	"welfare-moa/internal/common/errors"
	"welfare-moa/internal/common/logger"
	"welfare-moa/internal/common/metrics"
	"welfare-moa/internal/models"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL is how long generated recommendations stay fresh.
const DefaultTTL = 24 * time.Hour

const keyPrefix = "welfare:results:"

// ResultCache stores generated recommendation lists per profile with a
// fixed expiry. A cache miss or failure is never fatal; the engine just
// recomputes.
type ResultCache struct {
	redis  *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

// New creates a ResultCache with the given TTL (DefaultTTL if zero).
func New(rdb *redis.Client, ttl time.Duration, log logger.Logger) *ResultCache {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &ResultCache{
		redis:  rdb,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"component": "resultCache"}),
	}
}

// Get returns the cached recommendations for a profile, reporting
// whether a fresh entry existed.
func (c *ResultCache) Get(ctx context.Context, profileID string) ([]models.Recommendation, bool, error) {
	val, err := c.redis.Get(ctx, keyPrefix+profileID).Result()
	if err == redis.Nil {
		metrics.ResultCacheHits.WithLabelValues("miss").Inc()
		return nil, false, nil
	}
	if err != nil {
		metrics.ResultCacheHits.WithLabelValues("error").Inc()
		return nil, false, errors.NewCacheError("get", err)
	}

	var recs []models.Recommendation
	if err := json.Unmarshal([]byte(val), &recs); err != nil {
		// Stale or corrupt payload; treat as a miss and let it be rewritten.
		c.logger.Warn("dropping unreadable cache entry", map[string]interface{}{
			"profileId": profileID,
			"error":     err.Error(),
		})
		metrics.ResultCacheHits.WithLabelValues("miss").Inc()
		return nil, false, nil
	}
	metrics.ResultCacheHits.WithLabelValues("hit").Inc()
	return recs, true, nil
}

// Set stores the recommendations for a profile under the cache TTL.
func (c *ResultCache) Set(ctx context.Context, profileID string, recs []models.Recommendation) error {
	data, err := json.Marshal(recs)
	if err != nil {
		return errors.NewCacheError("marshal", err)
	}
	if err := c.redis.Set(ctx, keyPrefix+profileID, data, c.ttl).Err(); err != nil {
		return errors.NewCacheError("set", err)
	}
	return nil
}

// Invalidate drops the cached entry for a profile.
func (c *ResultCache) Invalidate(ctx context.Context, profileID string) error {
	if err := c.redis.Del(ctx, keyPrefix+profileID).Err(); err != nil {
		return errors.NewCacheError("del", err)
	}
	return nil
}
