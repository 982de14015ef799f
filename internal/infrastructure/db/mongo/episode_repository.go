package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spoonstory/podcast-platform/internal/core/domain"
)

const episodesCollection = "episodes"

type EpisodeRepository struct {
	coll *mongo.Collection
}

func NewEpisodeRepository(db *mongo.Database) *EpisodeRepository {
	return &EpisodeRepository{coll: db.Collection(episodesCollection)}
}

func (r *EpisodeRepository) Create(ctx context.Context, e *domain.Episode) (*domain.Episode, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *e
	created.ID = primitive.NewObjectID().Hex()
	if _, err := r.coll.InsertOne(ctx, created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *EpisodeRepository) FindByID(ctx context.Context, id string) (*domain.Episode, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var e domain.Episode
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEpisodeNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *EpisodeRepository) ListBySeries(ctx context.Context, seriesID string) ([]*domain.Episode, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(
		ctx,
		bson.M{"series_id": seriesID},
		options.Find().SetSort(bson.D{{Key: "episode_number", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []*domain.Episode
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *EpisodeRepository) CountBySeries(ctx context.Context, seriesID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.coll.CountDocuments(ctx, bson.M{"series_id": seriesID})
}

func (r *EpisodeRepository) Update(ctx context.Context, id string, patch domain.EpisodePatch) (*domain.Episode, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.EpisodeNumber != nil {
		set["episode_number"] = *patch.EpisodeNumber
	}

	var e domain.Episode
	err := r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&e)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEpisodeNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *EpisodeRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrEpisodeNotFound
	}
	return nil
}

func (r *EpisodeRepository) DeleteBySeries(ctx context.Context, seriesID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.DeleteMany(ctx, bson.M{"series_id": seriesID})
	return err
}

// EnsureIndexes creates the index backing per-series listing in episode order.
func (r *EpisodeRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "series_id", Value: 1}, {Key: "episode_number", Value: 1}},
	})
	return err
}
