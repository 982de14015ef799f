package ports

import (
	"context"

	"github.com/spoonstory/podcast-platform/internal/core/domain"
)

// HistoryRepository defines persistence for listening progress.
type HistoryRepository interface {
	// Upsert writes the single (userID, episodeID) row, creating it on
	// first write and advancing progress/completed/last_played_at after.
	Upsert(ctx context.Context, userID, episodeID string, progress float64, completed bool) (*domain.ListeningHistory, error)
	FindByUserAndEpisode(ctx context.Context, userID, episodeID string) (*domain.ListeningHistory, error)
}

// LikeRepository exposes the like counts attached to series views.
type LikeRepository interface {
	CountBySeries(ctx context.Context, seriesID string) (int64, error)
}
