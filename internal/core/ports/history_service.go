package ports

import (
	"context"

	"github.com/spoonstory/podcast-platform/internal/core/domain"
)

// HistoryService records playback progress.
type HistoryService interface {
	// RecordProgress upserts the (userID, episodeID) history row. The
	// completed flag is computed from the episode's duration, never
	// supplied by the caller.
	RecordProgress(ctx context.Context, userID, episodeID string, progress float64) (*domain.ListeningHistory, error)
}
