package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shopcraft/backoffice/internal/api/metrics"
)

// StatsCache provides the dashboard's cache-aside layer backed by Redis.
// Values are stored as JSON under their caller-provided key.
type StatsCache struct {
	client *redis.Client
}

// NewStatsCache creates a StatsCache wrapping the given Redis client.
func NewStatsCache(client *redis.Client) *StatsCache {
	return &StatsCache{client: client}
}

// Get unmarshals the cached value into dest and reports whether the key was
// present.
func (c *StatsCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.DashboardCacheTotal.WithLabelValues("miss").Inc()
			return false, nil
		}
		return false, fmt.Errorf("stats cache get: %w", err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("stats cache decode: %w", err)
	}
	metrics.DashboardCacheTotal.WithLabelValues("hit").Inc()
	return true, nil
}

// Set stores value as JSON, expiring after ttl.
func (c *StatsCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("stats cache encode: %w", err)
	}
	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("stats cache set: %w", err)
	}
	return nil
}
