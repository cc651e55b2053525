package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SummaryCache stores serialized dashboard summaries with a short TTL so the
// dashboard view does not recount on every request.
type SummaryCache struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewSummaryCache creates a Redis-backed summary cache.
func NewSummaryCache(client redis.UniversalClient, ttl time.Duration) *SummaryCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &SummaryCache{client: client, prefix: "dashboard:", ttl: ttl}
}

// Get retrieves a cached value by key. A missing key returns (nil, nil).
func (c *SummaryCache) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.New("key cannot be empty")
	}

	result, err := c.client.Get(ctx, c.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return []byte(result), nil
}

// Set stores a value under key with the cache TTL.
func (c *SummaryCache) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}
	return c.client.Set(ctx, c.prefix+key, value, c.ttl).Err()
}
