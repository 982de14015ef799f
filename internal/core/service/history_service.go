package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/spoonstory/podcast-platform/internal/core/domain"
	"github.com/spoonstory/podcast-platform/internal/core/ports"
)

// HistoryService records per-user playback progress.
type HistoryService struct {
	history  ports.HistoryRepository
	episodes ports.EpisodeRepository
	logger   zerolog.Logger
}

func NewHistoryService(history ports.HistoryRepository, episodes ports.EpisodeRepository, logger zerolog.Logger) *HistoryService {
	return &HistoryService{history: history, episodes: episodes, logger: logger}
}

// RecordProgress upserts the single (userID, episodeID) row. Completion is
// derived from the episode's duration: within 5 seconds of the end counts
// as finished.
func (s *HistoryService) RecordProgress(ctx context.Context, userID, episodeID string, progress float64) (*domain.ListeningHistory, error) {
	if episodeID == "" || progress < 0 {
		return nil, fmt.Errorf("%w: missing required fields: episodeId, progress", domain.ErrInvalidInput)
	}

	episode, err := s.episodes.FindByID(ctx, episodeID)
	if err != nil {
		return nil, err
	}

	completed := domain.ProgressCompleted(progress, episode.Duration)
	row, err := s.history.Upsert(ctx, userID, episodeID, progress, completed)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("user_id", userID).
		Str("episode_id", episodeID).
		Float64("progress", progress).
		Bool("completed", completed).
		Msg("listening progress recorded")
	return row, nil
}
