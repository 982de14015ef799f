package middleware

import (
	"net"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/spoonstory/podcast-platform/internal/api/metrics"
	"github.com/spoonstory/podcast-platform/internal/core/domain"
	"github.com/spoonstory/podcast-platform/internal/core/ports"
)

// RateLimit applies the injected fixed-window counter per client IP.
// When the counter store itself is unavailable the request is let through:
// a broken Redis must not take the API down with it.
func RateLimit(limiter ports.RateLimiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := limiter.Allow(c.Request().Context(), clientIP(c))
			if err != nil {
				log.Warn().Err(err).Msg("rate limit check failed")
				return next(c)
			}
			if !ok {
				metrics.RateLimitRejectionsTotal.Inc()
				return domain.ErrRateLimited
			}
			return next(c)
		}
	}
}

// clientIP prefers the first X-Forwarded-For hop, falling back to the
// connection's remote address.
func clientIP(c echo.Context) string {
	if forwarded := c.Request().Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	host, _, err := net.SplitHostPort(c.Request().RemoteAddr)
	if err != nil {
		return c.Request().RemoteAddr
	}
	return host
}
