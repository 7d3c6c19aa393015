// Package cache provides a small TTL-bounded JSON cache on Redis for
// repeated identical list queries. Staleness up to the TTL is acceptable;
// writes never invalidate entries explicitly.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New returns a cache backed by client. A nil client disables caching; every
// lookup misses and every store is a no-op.
func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Get unmarshals the entry for key into dest and reports whether it was
// found. Redis errors are treated as misses.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) bool {
	if c == nil || c.client == nil {
		return false
	}

	raw, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return false
	}

	return json.Unmarshal([]byte(raw), dest) == nil
}

// Set stores value under key for the configured TTL. Failures are ignored;
// the cache is best-effort.
func (c *Cache) Set(ctx context.Context, key string, value interface{}) {
	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return
	}

	_ = c.client.Set(ctx, key, raw, c.ttl).Err()
}
