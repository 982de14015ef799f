package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/spoonstory/podcast-platform/internal/core/domain"
)

// envelope is the canonical response shape shared by every endpoint:
// {"success": bool, "data"?: ..., "error"?: ..., "code"?: ...}.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

// OK renders a success envelope with the given status.
func OK(c echo.Context, status int, data any) error {
	return c.JSON(status, envelope{Success: true, Data: data})
}

// Taxonomy codes carried in the envelope's code field.
const (
	CodeValidation  = "VALIDATION_ERROR"
	CodeAuth        = "AUTH_ERROR"
	CodeForbidden   = "FORBIDDEN"
	CodeNotFound    = "NOT_FOUND"
	CodeRateLimited = "RATE_LIMITED"
	CodeConflict    = "CONFLICT"
	CodeInternal    = "INTERNAL_ERROR"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their taxonomy status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the shared JSON envelope with success:false.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, msg, code := resolveError(err, log, c)
		_ = c.JSON(status, envelope{Success: false, Error: msg, Code: code})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message), codeForStatus(he.Code)
	}

	// Known domain errors → deterministic HTTP codes. Duplicate email is
	// 400 by contract, not 409.
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, inputMessage(err), CodeValidation
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusBadRequest, "User already exists", CodeConflict
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials", CodeAuth
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "Insufficient permissions", CodeForbidden
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found", CodeNotFound
	case errors.Is(err, domain.ErrSeriesNotFound):
		return http.StatusNotFound, "Series not found", CodeNotFound
	case errors.Is(err, domain.ErrEpisodeNotFound):
		return http.StatusNotFound, "Episode not found", CodeNotFound
	case errors.Is(err, domain.ErrHistoryNotFound):
		return http.StatusNotFound, "Record not found", CodeNotFound
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests, "Too many requests. Please try again later.", CodeRateLimited
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Internal server error", CodeInternal
}

// inputMessage strips the sentinel prefix so the client sees only the
// field-level message.
func inputMessage(err error) string {
	msg := err.Error()
	if stripped, ok := strings.CutPrefix(msg, domain.ErrInvalidInput.Error()+": "); ok {
		return stripped
	}
	return msg
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return CodeValidation
	case http.StatusUnauthorized:
		return CodeAuth
	case http.StatusForbidden:
		return CodeForbidden
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusTooManyRequests:
		return CodeRateLimited
	default:
		return CodeInternal
	}
}
