package ports

import (
	"context"

	"github.com/spoonstory/podcast-platform/internal/core/domain"
)

// EpisodeRepository defines persistence operations for episodes.
type EpisodeRepository interface {
	Create(ctx context.Context, e *domain.Episode) (*domain.Episode, error)
	FindByID(ctx context.Context, id string) (*domain.Episode, error)
	// ListBySeries returns the series' episodes ordered by episode_number
	// ascending regardless of creation order.
	ListBySeries(ctx context.Context, seriesID string) ([]*domain.Episode, error)
	CountBySeries(ctx context.Context, seriesID string) (int64, error)
	Update(ctx context.Context, id string, patch domain.EpisodePatch) (*domain.Episode, error)
	Delete(ctx context.Context, id string) error
	// DeleteBySeries removes all episodes of a series (cascade on series delete).
	DeleteBySeries(ctx context.Context, seriesID string) error
}
