package service

import (
	"context"
	"io"
	"strconv"
	"time"

	"github.com/spoonstory/podcast-platform/internal/core/domain"
	"github.com/spoonstory/podcast-platform/internal/core/ports"
)

// In-memory fakes shared by the service tests.

type stubSeriesRepo struct {
	rows    map[string]*domain.Series
	nextID  int
	deleted []string
}

func newStubSeriesRepo() *stubSeriesRepo {
	return &stubSeriesRepo{rows: make(map[string]*domain.Series)}
}

func (r *stubSeriesRepo) Create(_ context.Context, s *domain.Series) (*domain.Series, error) {
	r.nextID++
	copy := *s
	copy.ID = "series_" + strconv.Itoa(r.nextID)
	r.rows[copy.ID] = &copy
	out := copy
	return &out, nil
}

func (r *stubSeriesRepo) FindByID(_ context.Context, id string) (*domain.Series, error) {
	if s, ok := r.rows[id]; ok {
		copy := *s
		return &copy, nil
	}
	return nil, domain.ErrSeriesNotFound
}

func (r *stubSeriesRepo) List(_ context.Context, creatorID string) ([]*domain.Series, error) {
	var out []*domain.Series
	for _, s := range r.rows {
		if creatorID != "" && s.CreatorID != creatorID {
			continue
		}
		copy := *s
		out = append(out, &copy)
	}
	return out, nil
}

func (r *stubSeriesRepo) Update(_ context.Context, id string, patch domain.SeriesPatch) (*domain.Series, error) {
	s, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrSeriesNotFound
	}
	if patch.Title != nil {
		s.Title = *patch.Title
	}
	if patch.Description != nil {
		s.Description = *patch.Description
	}
	if patch.Genre != nil {
		s.Genre = *patch.Genre
	}
	if patch.Thumbnail != nil {
		s.Thumbnail = *patch.Thumbnail
	}
	if patch.IsCompleted != nil {
		s.IsCompleted = *patch.IsCompleted
	}
	s.UpdatedAt = time.Now().UTC()
	copy := *s
	return &copy, nil
}

func (r *stubSeriesRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.rows[id]; !ok {
		return domain.ErrSeriesNotFound
	}
	delete(r.rows, id)
	r.deleted = append(r.deleted, id)
	return nil
}

type stubEpisodeRepo struct {
	rows           map[string]*domain.Episode
	nextID         int
	deletedSeries  []string
	deletedEpisode []string
}

func newStubEpisodeRepo() *stubEpisodeRepo {
	return &stubEpisodeRepo{rows: make(map[string]*domain.Episode)}
}

func (r *stubEpisodeRepo) Create(_ context.Context, e *domain.Episode) (*domain.Episode, error) {
	r.nextID++
	copy := *e
	copy.ID = "episode_" + strconv.Itoa(r.nextID)
	r.rows[copy.ID] = &copy
	out := copy
	return &out, nil
}

func (r *stubEpisodeRepo) FindByID(_ context.Context, id string) (*domain.Episode, error) {
	if e, ok := r.rows[id]; ok {
		copy := *e
		return &copy, nil
	}
	return nil, domain.ErrEpisodeNotFound
}

func (r *stubEpisodeRepo) ListBySeries(_ context.Context, seriesID string) ([]*domain.Episode, error) {
	var out []*domain.Episode
	for _, e := range r.rows {
		if e.SeriesID == seriesID {
			copy := *e
			out = append(out, &copy)
		}
	}
	return out, nil
}

func (r *stubEpisodeRepo) CountBySeries(_ context.Context, seriesID string) (int64, error) {
	var n int64
	for _, e := range r.rows {
		if e.SeriesID == seriesID {
			n++
		}
	}
	return n, nil
}

func (r *stubEpisodeRepo) Update(_ context.Context, id string, patch domain.EpisodePatch) (*domain.Episode, error) {
	e, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrEpisodeNotFound
	}
	if patch.Title != nil {
		e.Title = *patch.Title
	}
	if patch.Description != nil {
		e.Description = *patch.Description
	}
	if patch.EpisodeNumber != nil {
		e.EpisodeNumber = *patch.EpisodeNumber
	}
	e.UpdatedAt = time.Now().UTC()
	copy := *e
	return &copy, nil
}

func (r *stubEpisodeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.rows[id]; !ok {
		return domain.ErrEpisodeNotFound
	}
	delete(r.rows, id)
	r.deletedEpisode = append(r.deletedEpisode, id)
	return nil
}

func (r *stubEpisodeRepo) DeleteBySeries(_ context.Context, seriesID string) error {
	for id, e := range r.rows {
		if e.SeriesID == seriesID {
			delete(r.rows, id)
		}
	}
	r.deletedSeries = append(r.deletedSeries, seriesID)
	return nil
}

type stubLikeRepo struct {
	counts map[string]int64
}

func (r *stubLikeRepo) CountBySeries(_ context.Context, seriesID string) (int64, error) {
	return r.counts[seriesID], nil
}

type stubHistoryRepo struct {
	rows map[string]*domain.ListeningHistory
}

func newStubHistoryRepo() *stubHistoryRepo {
	return &stubHistoryRepo{rows: make(map[string]*domain.ListeningHistory)}
}

func (r *stubHistoryRepo) Upsert(_ context.Context, userID, episodeID string, progress float64, completed bool) (*domain.ListeningHistory, error) {
	key := userID + "/" + episodeID
	now := time.Now().UTC()
	row, ok := r.rows[key]
	if !ok {
		row = &domain.ListeningHistory{
			ID:        key,
			UserID:    userID,
			EpisodeID: episodeID,
			CreatedAt: now,
		}
		r.rows[key] = row
	}
	row.Progress = progress
	row.Completed = completed
	row.LastPlayedAt = now
	row.UpdatedAt = now
	copy := *row
	return &copy, nil
}

func (r *stubHistoryRepo) FindByUserAndEpisode(_ context.Context, userID, episodeID string) (*domain.ListeningHistory, error) {
	if row, ok := r.rows[userID+"/"+episodeID]; ok {
		copy := *row
		return &copy, nil
	}
	return nil, domain.ErrHistoryNotFound
}

type stubFileStore struct {
	saved []ports.UploadedFile
	dirs  []string
	url   string
	err   error
}

func (s *stubFileStore) Save(_ context.Context, file ports.UploadedFile, directory string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if file.Content != nil {
		_, _ = io.Copy(io.Discard, file.Content)
	}
	s.saved = append(s.saved, file)
	s.dirs = append(s.dirs, directory)
	if s.url != "" {
		return s.url, nil
	}
	return "/" + directory + "/" + file.Name, nil
}

func seedUser(repo *stubUserRepo, id, name string) *domain.User {
	u := &domain.User{ID: id, Email: id + "@example.com", Name: name, Role: domain.RoleCreator}
	repo.byEmail[u.Email] = u
	return u
}
