package ports

import (
	"context"

	"github.com/spoonstory/podcast-platform/internal/core/domain"
)

// CreateSeriesInput carries all data needed to create a series.
type CreateSeriesInput struct {
	Title       string
	Description string
	Genre       string
	Thumbnail   string
	CreatorID   string
}

// SeriesService defines use-case operations for series.
// Mutations take callerID and fail with domain.ErrForbidden when the caller
// is not the series' creator.
type SeriesService interface {
	Create(ctx context.Context, input CreateSeriesInput) (*domain.Series, error)
	List(ctx context.Context, creatorID string) ([]domain.SeriesWithMeta, error)
	Get(ctx context.Context, id string) (*domain.SeriesWithMeta, error)
	Update(ctx context.Context, id, callerID string, patch domain.SeriesPatch) (*domain.Series, error)
	// Delete removes the series and cascades to its episodes.
	Delete(ctx context.Context, id, callerID string) error
	// SetThumbnail stores the uploaded image and records its URL on the series.
	SetThumbnail(ctx context.Context, seriesID, callerID string, file UploadedFile) (*domain.Series, error)
}
