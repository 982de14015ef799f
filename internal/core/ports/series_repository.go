package ports

import (
	"context"

	"github.com/spoonstory/podcast-platform/internal/core/domain"
)

// SeriesRepository defines persistence operations for series.
type SeriesRepository interface {
	Create(ctx context.Context, s *domain.Series) (*domain.Series, error)
	FindByID(ctx context.Context, id string) (*domain.Series, error)
	// List returns series newest first. When creatorID is non-empty the
	// result is scoped to that creator.
	List(ctx context.Context, creatorID string) ([]*domain.Series, error)
	Update(ctx context.Context, id string, patch domain.SeriesPatch) (*domain.Series, error)
	Delete(ctx context.Context, id string) error
}
