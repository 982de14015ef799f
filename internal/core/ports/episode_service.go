package ports

import (
	"context"

	"github.com/spoonstory/podcast-platform/internal/core/domain"
)

// CreateEpisodeInput carries the multipart episode-create payload.
type CreateEpisodeInput struct {
	Title         string
	Description   string
	SeriesID      string
	EpisodeNumber int
	Duration      int
	CallerID      string
	Audio         UploadedFile
}

// EpisodeService defines use-case operations for episodes. Ownership is
// inherited through the parent series.
type EpisodeService interface {
	Create(ctx context.Context, input CreateEpisodeInput) (*domain.Episode, error)
	ListBySeries(ctx context.Context, seriesID string) ([]*domain.Episode, error)
	Get(ctx context.Context, id string) (*domain.EpisodeWithSeries, error)
	Update(ctx context.Context, id, callerID string, patch domain.EpisodePatch) (*domain.Episode, error)
	Delete(ctx context.Context, id, callerID string) error
}
