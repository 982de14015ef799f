package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/spoonstory/podcast-platform/internal/core/domain"
	"github.com/spoonstory/podcast-platform/internal/core/ports"
)

// newJSONContext builds an echo context carrying a JSON body, the way the
// router would hand it to a handler.
func newJSONContext(method, target string, body any) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// newMultipartContext builds an echo context carrying form fields plus one
// file part.
func newMultipartContext(t *testing.T, target string, fields map[string]string, filePart, fileName, contentType, content string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if filePart != "" {
		header := make(map[string][]string)
		header["Content-Disposition"] = []string{`form-data; name="` + filePart + `"; filename="` + fileName + `"`}
		header["Content-Type"] = []string{contentType}
		part, err := writer.CreatePart(header)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := io.Copy(part, strings.NewReader(content)); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("response is not JSON: %v\n%s", err, rec.Body.String())
	}
	return out
}

// --- Stub services ---

type stubAuthService struct {
	user  *domain.User
	token string
	err   error

	gotRegister ports.RegisterInput
	gotEmail    string
	gotPassword string
}

func (s *stubAuthService) Register(_ context.Context, input ports.RegisterInput) (*domain.User, string, error) {
	s.gotRegister = input
	if s.err != nil {
		return nil, "", s.err
	}
	return s.user, s.token, nil
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (string, *domain.User, error) {
	s.gotEmail = email
	s.gotPassword = password
	if s.err != nil {
		return "", nil, s.err
	}
	return s.token, s.user, nil
}

type stubSeriesService struct {
	series *domain.Series
	meta   *domain.SeriesWithMeta
	list   []domain.SeriesWithMeta
	err    error

	gotCreate    ports.CreateSeriesInput
	gotID        string
	gotCallerID  string
	gotCreatorID string
	gotPatch     domain.SeriesPatch
	gotFile      ports.UploadedFile
	deleted      bool
}

func (s *stubSeriesService) Create(_ context.Context, input ports.CreateSeriesInput) (*domain.Series, error) {
	s.gotCreate = input
	return s.series, s.err
}

func (s *stubSeriesService) List(_ context.Context, creatorID string) ([]domain.SeriesWithMeta, error) {
	s.gotCreatorID = creatorID
	return s.list, s.err
}

func (s *stubSeriesService) Get(_ context.Context, id string) (*domain.SeriesWithMeta, error) {
	s.gotID = id
	return s.meta, s.err
}

func (s *stubSeriesService) Update(_ context.Context, id, callerID string, patch domain.SeriesPatch) (*domain.Series, error) {
	s.gotID, s.gotCallerID, s.gotPatch = id, callerID, patch
	return s.series, s.err
}

func (s *stubSeriesService) Delete(_ context.Context, id, callerID string) error {
	s.gotID, s.gotCallerID = id, callerID
	s.deleted = s.err == nil
	return s.err
}

func (s *stubSeriesService) SetThumbnail(_ context.Context, seriesID, callerID string, file ports.UploadedFile) (*domain.Series, error) {
	s.gotID, s.gotCallerID, s.gotFile = seriesID, callerID, file
	return s.series, s.err
}

type stubEpisodeService struct {
	episode  *domain.Episode
	detail   *domain.EpisodeWithSeries
	episodes []*domain.Episode
	err      error

	gotCreate   ports.CreateEpisodeInput
	gotID       string
	gotCallerID string
	gotSeriesID string
	gotPatch    domain.EpisodePatch
}

func (s *stubEpisodeService) Create(_ context.Context, input ports.CreateEpisodeInput) (*domain.Episode, error) {
	if input.Audio.Content != nil {
		_, _ = io.Copy(io.Discard, input.Audio.Content)
	}
	s.gotCreate = input
	return s.episode, s.err
}

func (s *stubEpisodeService) ListBySeries(_ context.Context, seriesID string) ([]*domain.Episode, error) {
	s.gotSeriesID = seriesID
	return s.episodes, s.err
}

func (s *stubEpisodeService) Get(_ context.Context, id string) (*domain.EpisodeWithSeries, error) {
	s.gotID = id
	return s.detail, s.err
}

func (s *stubEpisodeService) Update(_ context.Context, id, callerID string, patch domain.EpisodePatch) (*domain.Episode, error) {
	s.gotID, s.gotCallerID, s.gotPatch = id, callerID, patch
	return s.episode, s.err
}

func (s *stubEpisodeService) Delete(_ context.Context, id, callerID string) error {
	s.gotID, s.gotCallerID = id, callerID
	return s.err
}

type stubHistoryService struct {
	row *domain.ListeningHistory
	err error

	gotUserID    string
	gotEpisodeID string
	gotProgress  float64
}

func (s *stubHistoryService) RecordProgress(_ context.Context, userID, episodeID string, progress float64) (*domain.ListeningHistory, error) {
	s.gotUserID, s.gotEpisodeID, s.gotProgress = userID, episodeID, progress
	return s.row, s.err
}
