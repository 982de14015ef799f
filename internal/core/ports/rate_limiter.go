package ports

import "context"

// RateLimiter is the injected per-client request counter. Windows are
// fixed: the count resets wholesale when the window expires, not sliding.
type RateLimiter interface {
	// Allow records one request for key and reports whether it fits
	// within the current window.
	Allow(ctx context.Context, key string) (bool, error)
}
