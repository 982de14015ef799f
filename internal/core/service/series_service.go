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

const maxThumbnailSize = 5 * 1024 * 1024 // 5MB

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/webp": {},
}

// SeriesService implements series CRUD with creator-ownership enforcement.
type SeriesService struct {
	series   ports.SeriesRepository
	episodes ports.EpisodeRepository
	likes    ports.LikeRepository
	users    ports.UserRepository
	files    ports.FileStore
	logger   zerolog.Logger
}

func NewSeriesService(
	series ports.SeriesRepository,
	episodes ports.EpisodeRepository,
	likes ports.LikeRepository,
	users ports.UserRepository,
	files ports.FileStore,
	logger zerolog.Logger,
) *SeriesService {
	return &SeriesService{
		series:   series,
		episodes: episodes,
		likes:    likes,
		users:    users,
		files:    files,
		logger:   logger,
	}
}

func (s *SeriesService) Create(ctx context.Context, input ports.CreateSeriesInput) (*domain.Series, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" || strings.TrimSpace(input.Genre) == "" {
		return nil, fmt.Errorf("%w: missing required fields: title, description, genre", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	created, err := s.series.Create(ctx, &domain.Series{
		Title:       input.Title,
		Description: input.Description,
		Genre:       input.Genre,
		Thumbnail:   input.Thumbnail,
		CreatorID:   input.CreatorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("series_id", created.ID).Str("creator_id", created.CreatorID).Msg("series created")
	return created, nil
}

func (s *SeriesService) List(ctx context.Context, creatorID string) ([]domain.SeriesWithMeta, error) {
	items, err := s.series.List(ctx, creatorID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.SeriesWithMeta, 0, len(items))
	for _, item := range items {
		meta, err := s.annotate(ctx, item)
		if err != nil {
			return nil, err
		}
		out = append(out, *meta)
	}
	return out, nil
}

func (s *SeriesService) Get(ctx context.Context, id string) (*domain.SeriesWithMeta, error) {
	series, err := s.series.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.annotate(ctx, series)
}

func (s *SeriesService) Update(ctx context.Context, id, callerID string, patch domain.SeriesPatch) (*domain.Series, error) {
	if err := s.requireOwner(ctx, id, callerID); err != nil {
		return nil, err
	}

	updated, err := s.series.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("series_id", id).Msg("series updated")
	return updated, nil
}

// Delete removes the series and all of its episodes. Episodes go first so a
// failure never leaves episodes without a parent visible in listings.
func (s *SeriesService) Delete(ctx context.Context, id, callerID string) error {
	if err := s.requireOwner(ctx, id, callerID); err != nil {
		return err
	}

	if err := s.episodes.DeleteBySeries(ctx, id); err != nil {
		return err
	}
	if err := s.series.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("series_id", id).Msg("series deleted")
	return nil
}

func (s *SeriesService) SetThumbnail(ctx context.Context, seriesID, callerID string, file ports.UploadedFile) (*domain.Series, error) {
	if err := s.requireOwner(ctx, seriesID, callerID); err != nil {
		return nil, err
	}
	if _, ok := allowedImageTypes[file.ContentType]; !ok {
		return nil, fmt.Errorf("%w: unsupported image type %q", domain.ErrInvalidInput, file.ContentType)
	}
	if file.Size > maxThumbnailSize {
		return nil, fmt.Errorf("%w: thumbnail exceeds 5MB limit", domain.ErrInvalidInput)
	}

	url, err := s.files.Save(ctx, file, "uploads/thumbnails")
	if err != nil {
		return nil, err
	}

	updated, err := s.series.Update(ctx, seriesID, domain.SeriesPatch{Thumbnail: &url})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("series_id", seriesID).Str("thumbnail", url).Msg("thumbnail updated")
	return updated, nil
}

// requireOwner loads the series and checks the caller is its creator.
// Ordering matters: a missing series is 404 even for non-owners.
func (s *SeriesService) requireOwner(ctx context.Context, seriesID, callerID string) error {
	series, err := s.series.FindByID(ctx, seriesID)
	if err != nil {
		return err
	}
	if series.CreatorID != callerID {
		return domain.ErrForbidden
	}
	return nil
}

func (s *SeriesService) annotate(ctx context.Context, series *domain.Series) (*domain.SeriesWithMeta, error) {
	episodes, err := s.episodes.CountBySeries(ctx, series.ID)
	if err != nil {
		return nil, err
	}
	likes, err := s.likes.CountBySeries(ctx, series.ID)
	if err != nil {
		return nil, err
	}

	meta := &domain.SeriesWithMeta{
		Series: *series,
		Counts: domain.SeriesCounts{Episodes: episodes, Likes: likes},
	}
	if creator, err := s.users.FindByID(ctx, series.CreatorID); err == nil {
		meta.Creator = creator.Summary()
	}
	return meta, nil
}
