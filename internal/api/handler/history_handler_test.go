package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/spoonstory/podcast-platform/internal/core/domain"
)

func TestHistoryHandler_Record(t *testing.T) {
	svc := &stubHistoryService{row: &domain.ListeningHistory{
		ID: "h1", UserID: "user_1", EpisodeID: "episode_1", Progress: 42, Completed: false,
	}}
	h := NewHistoryHandler(svc)

	c, rec := newJSONContext(http.MethodPost, "/listening-history", map[string]any{
		"episodeId": "episode_1",
		"progress":  42.0,
	})
	c.Set("user_id", "user_1")

	if err := h.Record(c); err != nil {
		t.Fatalf("Record returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.gotUserID != "user_1" || svc.gotEpisodeID != "episode_1" || svc.gotProgress != 42 {
		t.Fatalf("input not forwarded: %q %q %.0f", svc.gotUserID, svc.gotEpisodeID, svc.gotProgress)
	}
	data := decodeEnvelope(t, rec)["data"].(map[string]any)
	if data["progress"] != float64(42) {
		t.Fatalf("row not serialized: %v", data)
	}
}

func TestHistoryHandler_Record_ZeroProgressAllowed(t *testing.T) {
	svc := &stubHistoryService{row: &domain.ListeningHistory{ID: "h1"}}
	h := NewHistoryHandler(svc)

	// progress: 0 is a legitimate "just started" write and must pass the
	// required check.
	c, _ := newJSONContext(http.MethodPost, "/listening-history", map[string]any{
		"episodeId": "episode_1",
		"progress":  0,
	})
	c.Set("user_id", "user_1")

	if err := h.Record(c); err != nil {
		t.Fatalf("zero progress rejected: %v", err)
	}
	if svc.gotProgress != 0 {
		t.Fatalf("progress not forwarded: %.0f", svc.gotProgress)
	}
}

func TestHistoryHandler_Record_MissingFields(t *testing.T) {
	h := NewHistoryHandler(&stubHistoryService{})

	c, _ := newJSONContext(http.MethodPost, "/listening-history", map[string]any{
		"episodeId": "episode_1",
	})
	c.Set("user_id", "user_1")

	err := h.Record(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestHistoryHandler_Record_UnknownEpisodePropagates(t *testing.T) {
	svc := &stubHistoryService{err: domain.ErrEpisodeNotFound}
	h := NewHistoryHandler(svc)

	c, _ := newJSONContext(http.MethodPost, "/listening-history", map[string]any{
		"episodeId": "missing",
		"progress":  10.0,
	})
	c.Set("user_id", "user_1")

	if err := h.Record(c); !errors.Is(err, domain.ErrEpisodeNotFound) {
		t.Fatalf("expected ErrEpisodeNotFound to propagate, got %v", err)
	}
}
