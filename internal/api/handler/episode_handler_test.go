package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/spoonstory/podcast-platform/internal/core/domain"
)

func TestEpisodeHandler_Create(t *testing.T) {
	svc := &stubEpisodeService{episode: &domain.Episode{ID: "episode_1", Title: "Pilot"}}
	h := NewEpisodeHandler(svc)

	c, rec := newMultipartContext(t, "/episodes", map[string]string{
		"title":         "Pilot",
		"description":   "First one",
		"seriesId":      "series_1",
		"episodeNumber": "1",
		"duration":      "1800",
	}, "audio", "pilot.mp3", "audio/mpeg", "mp3-bytes")
	c.Set("user_id", "user_1")

	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	got := svc.gotCreate
	if got.Title != "Pilot" || got.SeriesID != "series_1" || got.CallerID != "user_1" {
		t.Fatalf("fields not forwarded: %+v", got)
	}
	if got.EpisodeNumber != 1 || got.Duration != 1800 {
		t.Fatalf("numeric fields not parsed: %+v", got)
	}
	if got.Audio.Name != "pilot.mp3" || got.Audio.ContentType != "audio/mpeg" {
		t.Fatalf("audio part not forwarded: %+v", got.Audio)
	}
}

func TestEpisodeHandler_Create_MissingAudio(t *testing.T) {
	h := NewEpisodeHandler(&stubEpisodeService{})

	c, _ := newMultipartContext(t, "/episodes", map[string]string{
		"title":    "Pilot",
		"seriesId": "series_1",
	}, "", "", "", "")
	c.Set("user_id", "user_1")

	err := h.Create(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestEpisodeHandler_List_ForwardsSeriesID(t *testing.T) {
	svc := &stubEpisodeService{episodes: []*domain.Episode{{ID: "e1"}}}
	h := NewEpisodeHandler(svc)

	c, rec := newJSONContext(http.MethodGet, "/episodes?seriesId=series_1", nil)
	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.gotSeriesID != "series_1" {
		t.Fatalf("seriesId not forwarded: %q", svc.gotSeriesID)
	}
}

func TestEpisodeHandler_Get(t *testing.T) {
	svc := &stubEpisodeService{detail: &domain.EpisodeWithSeries{
		Episode: domain.Episode{ID: "episode_1", Title: "Pilot"},
	}}
	h := NewEpisodeHandler(svc)

	c, rec := newJSONContext(http.MethodGet, "/episodes/episode_1", nil)
	c.SetParamNames("id")
	c.SetParamValues("episode_1")

	if err := h.Get(c); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if svc.gotID != "episode_1" {
		t.Fatalf("id not forwarded: %q", svc.gotID)
	}
	data := decodeEnvelope(t, rec)["data"].(map[string]any)
	if data["title"] != "Pilot" {
		t.Fatalf("episode not serialized: %v", data)
	}
}

func TestEpisodeHandler_Update_ForwardsPatch(t *testing.T) {
	svc := &stubEpisodeService{episode: &domain.Episode{ID: "episode_1"}}
	h := NewEpisodeHandler(svc)

	c, _ := newJSONContext(http.MethodPut, "/episodes/episode_1", map[string]any{
		"episodeNumber": 4,
	})
	c.SetParamNames("id")
	c.SetParamValues("episode_1")
	c.Set("user_id", "user_1")

	if err := h.Update(c); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if svc.gotPatch.EpisodeNumber == nil || *svc.gotPatch.EpisodeNumber != 4 {
		t.Fatalf("episodeNumber patch not forwarded: %+v", svc.gotPatch)
	}
	if svc.gotPatch.Title != nil {
		t.Fatalf("absent field should stay nil: %+v", svc.gotPatch)
	}
}

func TestEpisodeHandler_Delete(t *testing.T) {
	svc := &stubEpisodeService{}
	h := NewEpisodeHandler(svc)

	c, rec := newJSONContext(http.MethodDelete, "/episodes/episode_1", nil)
	c.SetParamNames("id")
	c.SetParamValues("episode_1")
	c.Set("user_id", "user_1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	data := decodeEnvelope(t, rec)["data"].(map[string]any)
	if data["message"] != "Episode deleted successfully" {
		t.Fatalf("unexpected message: %v", data)
	}
}
