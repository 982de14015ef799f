package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// FixedWindowLimiter counts requests per key in fixed windows backed by
// Redis. The window resets wholesale when its TTL expires, not sliding,
// and the counter is shared across instances.
// Key format: ratelimit:<key>
type FixedWindowLimiter struct {
	client *redis.Client
	max    int64
	window time.Duration
}

// NewFixedWindowLimiter wraps the given Redis client. max is the number of
// requests permitted per window.
func NewFixedWindowLimiter(client *redis.Client, max int64, window time.Duration) *FixedWindowLimiter {
	if max <= 0 {
		max = 100
	}
	if window <= 0 {
		window = time.Minute
	}
	return &FixedWindowLimiter{client: client, max: max, window: window}
}

// Allow records one request for key and reports whether it is within the
// window's budget. The first hit of a window sets the TTL.
func (l *FixedWindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := l.key(key)

	n, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, k, l.window).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return n <= l.max, nil
}

func (l *FixedWindowLimiter) key(key string) string {
	return fmt.Sprintf("ratelimit:%s", key)
}
