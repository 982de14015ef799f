package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/spoonstory/podcast-platform/internal/core/domain"
	"github.com/spoonstory/podcast-platform/internal/core/ports"
)

const maxAudioSize = 100 * 1024 * 1024 // 100MB

var allowedAudioTypes = map[string]struct{}{
	"audio/mpeg": {},
	"audio/mp3":  {},
	"audio/wav":  {},
	"audio/ogg":  {},
}

// EpisodeService implements episode CRUD. Ownership checks go through the
// parent series: an episode's effective owner is its series' creator.
type EpisodeService struct {
	episodes ports.EpisodeRepository
	series   ports.SeriesRepository
	users    ports.UserRepository
	files    ports.FileStore
	logger   zerolog.Logger
}

func NewEpisodeService(
	episodes ports.EpisodeRepository,
	series ports.SeriesRepository,
	users ports.UserRepository,
	files ports.FileStore,
	logger zerolog.Logger,
) *EpisodeService {
	return &EpisodeService{
		episodes: episodes,
		series:   series,
		users:    users,
		files:    files,
		logger:   logger,
	}
}

func (s *EpisodeService) Create(ctx context.Context, input ports.CreateEpisodeInput) (*domain.Episode, error) {
	if strings.TrimSpace(input.Title) == "" || input.SeriesID == "" || input.EpisodeNumber <= 0 || input.Audio.Content == nil {
		return nil, fmt.Errorf("%w: missing required fields: title, seriesId, episodeNumber, audio", domain.ErrInvalidInput)
	}
	if input.Duration < 0 {
		return nil, fmt.Errorf("%w: duration must not be negative", domain.ErrInvalidInput)
	}

	// Ownership before any side effect: no file lands on disk for a
	// request that would be rejected.
	series, err := s.series.FindByID(ctx, input.SeriesID)
	if err != nil {
		return nil, err
	}
	if series.CreatorID != input.CallerID {
		return nil, domain.ErrForbidden
	}

	if _, ok := allowedAudioTypes[input.Audio.ContentType]; !ok {
		return nil, fmt.Errorf("%w: unsupported audio type %q", domain.ErrInvalidInput, input.Audio.ContentType)
	}
	if input.Audio.Size > maxAudioSize {
		return nil, fmt.Errorf("%w: audio file exceeds 100MB limit", domain.ErrInvalidInput)
	}

	audioURL, err := s.files.Save(ctx, input.Audio, "uploads/audio")
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.episodes.Create(ctx, &domain.Episode{
		Title:         input.Title,
		Description:   input.Description,
		AudioURL:      audioURL,
		Duration:      input.Duration,
		EpisodeNumber: input.EpisodeNumber,
		SeriesID:      input.SeriesID,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("episode_id", created.ID).
		Str("series_id", created.SeriesID).
		Int("episode_number", created.EpisodeNumber).
		Msg("episode created")
	return created, nil
}

func (s *EpisodeService) ListBySeries(ctx context.Context, seriesID string) ([]*domain.Episode, error) {
	if seriesID == "" {
		return nil, fmt.Errorf("%w: Series ID required", domain.ErrInvalidInput)
	}
	return s.episodes.ListBySeries(ctx, seriesID)
}

func (s *EpisodeService) Get(ctx context.Context, id string) (*domain.EpisodeWithSeries, error) {
	episode, err := s.episodes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	out := &domain.EpisodeWithSeries{Episode: *episode}
	series, err := s.series.FindByID(ctx, episode.SeriesID)
	if err != nil {
		return nil, err
	}
	out.Series.Series = *series
	if creator, err := s.users.FindByID(ctx, series.CreatorID); err == nil {
		out.Series.Creator = domain.CreatorSummary{ID: creator.ID, Name: creator.Name}
	}
	return out, nil
}

func (s *EpisodeService) Update(ctx context.Context, id, callerID string, patch domain.EpisodePatch) (*domain.Episode, error) {
	if _, err := s.requireOwner(ctx, id, callerID); err != nil {
		return nil, err
	}
	if patch.EpisodeNumber != nil && *patch.EpisodeNumber <= 0 {
		return nil, fmt.Errorf("%w: episodeNumber must be positive", domain.ErrInvalidInput)
	}

	updated, err := s.episodes.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("episode_id", id).Msg("episode updated")
	return updated, nil
}

func (s *EpisodeService) Delete(ctx context.Context, id, callerID string) error {
	if _, err := s.requireOwner(ctx, id, callerID); err != nil {
		return err
	}

	if err := s.episodes.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("episode_id", id).Msg("episode deleted")
	return nil
}

func (s *EpisodeService) requireOwner(ctx context.Context, episodeID, callerID string) (*domain.Episode, error) {
	episode, err := s.episodes.FindByID(ctx, episodeID)
	if err != nil {
		return nil, err
	}
	series, err := s.series.FindByID(ctx, episode.SeriesID)
	if err != nil {
		return nil, err
	}
	if series.CreatorID != callerID {
		return nil, domain.ErrForbidden
	}
	return episode, nil
}
