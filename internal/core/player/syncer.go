package player

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const defaultSyncInterval = 10 * time.Second

// ProgressRecorder persists a playback position for an episode. The
// history service satisfies this for a fixed user.
type ProgressRecorder interface {
	RecordProgress(ctx context.Context, episodeID string, position float64) error
}

// ProgressSyncer throttles the player's time updates and forwards them to a
// recorder. Every update for a new episode is sent immediately; within the
// same episode at most one update per interval goes out.
type ProgressSyncer struct {
	mu       sync.Mutex
	recorder ProgressRecorder
	interval time.Duration
	logger   zerolog.Logger
	now      func() time.Time

	lastEpisode string
	lastSent    time.Time
}

func NewProgressSyncer(recorder ProgressRecorder, interval time.Duration, logger zerolog.Logger) *ProgressSyncer {
	if interval <= 0 {
		interval = defaultSyncInterval
	}
	return &ProgressSyncer{
		recorder: recorder,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

// OnProgress satisfies ProgressFunc. Recorder failures are logged and
// dropped; the next tick retries naturally.
func (s *ProgressSyncer) OnProgress(episodeID string, position float64) {
	s.mu.Lock()
	now := s.now()
	if episodeID == s.lastEpisode && now.Sub(s.lastSent) < s.interval {
		s.mu.Unlock()
		return
	}
	s.lastEpisode = episodeID
	s.lastSent = now
	s.mu.Unlock()

	if err := s.recorder.RecordProgress(context.Background(), episodeID, position); err != nil {
		s.logger.Warn().Err(err).Str("episode_id", episodeID).Msg("progress sync failed")
	}
}
