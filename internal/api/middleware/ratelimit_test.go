package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/spoonstory/podcast-platform/internal/core/domain"
)

type fakeLimiter struct {
	allow   bool
	err     error
	gotKeys []string
}

func (l *fakeLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.gotKeys = append(l.gotKeys, key)
	return l.allow, l.err
}

func runRateLimit(limiter *fakeLimiter, remoteAddr, forwardedFor string) error {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/series", nil)
	req.RemoteAddr = remoteAddr
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RateLimit(limiter, zerolog.Nop())(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return handler(c)
}

func TestRateLimit_Allows(t *testing.T) {
	limiter := &fakeLimiter{allow: true}
	if err := runRateLimit(limiter, "10.0.0.1:52000", ""); err != nil {
		t.Fatalf("allowed request failed: %v", err)
	}
	if len(limiter.gotKeys) != 1 || limiter.gotKeys[0] != "10.0.0.1" {
		t.Fatalf("limiter keyed on wrong value: %v", limiter.gotKeys)
	}
}

func TestRateLimit_Rejects(t *testing.T) {
	limiter := &fakeLimiter{allow: false}
	err := runRateLimit(limiter, "10.0.0.1:52000", "")
	if !errors.Is(err, domain.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}

func TestRateLimit_FailsOpenOnLimiterError(t *testing.T) {
	limiter := &fakeLimiter{err: errors.New("redis down")}
	if err := runRateLimit(limiter, "10.0.0.1:52000", ""); err != nil {
		t.Fatalf("request should pass through when the limiter errors, got %v", err)
	}
}

func TestRateLimit_PrefersForwardedFor(t *testing.T) {
	limiter := &fakeLimiter{allow: true}
	if err := runRateLimit(limiter, "10.0.0.1:52000", "203.0.113.7, 198.51.100.2"); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if limiter.gotKeys[0] != "203.0.113.7" {
		t.Fatalf("expected first forwarded hop, got %q", limiter.gotKeys[0])
	}
}
