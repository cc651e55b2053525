// Package redis provides Redis-backed adapters: the login rate limiter and
// the dashboard summary cache.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginLimiter is a fixed-window rate limiter for login attempts.
// It counts failures per key (username plus client address) and blocks
// further attempts once MaxAttempts is reached inside the window.
type LoginLimiter struct {
	client      redis.UniversalClient
	prefix      string
	maxAttempts int
	window      time.Duration
}

// LoginLimiterConfig groups construction parameters for LoginLimiter.
type LoginLimiterConfig struct {
	MaxAttempts int
	Window      time.Duration
}

// NewLoginLimiter creates a Redis-backed login limiter.
func NewLoginLimiter(client redis.UniversalClient, cfg LoginLimiterConfig) *LoginLimiter {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 5
	}
	window := cfg.Window
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &LoginLimiter{
		client:      client,
		prefix:      "login_attempts:",
		maxAttempts: maxAttempts,
		window:      window,
	}
}

// Allow reports whether another attempt is permitted for the key.
func (l *LoginLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.New("limiter key cannot be empty")
	}

	count, err := l.client.Get(ctx, l.prefix+key).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return true, nil // No failures recorded yet
		}
		return false, fmt.Errorf("redis get: %w", err)
	}
	return count < l.maxAttempts, nil
}

// RecordFailure counts a failed attempt against the key. The window TTL is
// set when the first failure creates the counter, so the window is measured
// from the first failure, not the most recent one.
func (l *LoginLimiter) RecordFailure(ctx context.Context, key string) error {
	if key == "" {
		return errors.New("limiter key cannot be empty")
	}

	fullKey := l.prefix + key
	count, err := l.client.Incr(ctx, fullKey).Result()
	if err != nil {
		return fmt.Errorf("redis incr: %w", err)
	}
	if count == 1 {
		if expErr := l.client.Expire(ctx, fullKey, l.window).Err(); expErr != nil {
			return fmt.Errorf("redis expire: %w", expErr)
		}
	}
	return nil
}

// Reset clears the counter for the key after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, key string) error {
	if key == "" {
		return nil // Nothing to reset
	}
	return l.client.Del(ctx, l.prefix+key).Err()
}
