// Package cache provides a small JSON cache on Redis.
//
// Used for responses that are expensive to rebuild and fine to serve
// slightly stale: leaderboards (60s) and the space weather report (10min).
// The cache is optional — a nil *Cache (Redis not configured) degrades to
// always-miss so handlers need no special casing.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTLs for the cached surfaces.
const (
	LeaderboardTTL  = 60 * time.Second
	SpaceWeatherTTL = 10 * time.Minute
)

// Cache is a JSON value cache backed by Redis.
type Cache struct {
	client *redis.Client
}

// New connects to Redis and verifies the connection. Returns (nil, nil)
// when addr is empty, which callers treat as "caching disabled".
func New(ctx context.Context, addr, password string) (*Cache, error) {
	if addr == "" {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}
	return &Cache{client: client}, nil
}

// NewWithClient wraps an existing Redis client, used by tests.
func NewWithClient(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// GetJSON loads a cached value into dest. The bool reports a hit; cache
// errors are returned as misses so a flaky Redis never breaks a request.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

// SetJSON stores a value under key for ttl. Errors are returned for
// logging but are never fatal to the caller.
func (c *Cache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if c == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache %q: %w", key, err)
	}
	return nil
}

// Invalidate drops one or more keys.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	c.client.Del(ctx, keys...)
}

// Close releases the Redis connection.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
