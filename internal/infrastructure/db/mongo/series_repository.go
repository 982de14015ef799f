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

const seriesCollection = "series"

type SeriesRepository struct {
	coll *mongo.Collection
}

func NewSeriesRepository(db *mongo.Database) *SeriesRepository {
	return &SeriesRepository{coll: db.Collection(seriesCollection)}
}

func (r *SeriesRepository) Create(ctx context.Context, s *domain.Series) (*domain.Series, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *s
	created.ID = primitive.NewObjectID().Hex()
	if _, err := r.coll.InsertOne(ctx, created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *SeriesRepository) FindByID(ctx context.Context, id string) (*domain.Series, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Series
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSeriesNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *SeriesRepository) List(ctx context.Context, creatorID string) ([]*domain.Series, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if creatorID != "" {
		filter["creator_id"] = creatorID
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []*domain.Series
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SeriesRepository) Update(ctx context.Context, id string, patch domain.SeriesPatch) (*domain.Series, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Genre != nil {
		set["genre"] = *patch.Genre
	}
	if patch.Thumbnail != nil {
		set["thumbnail"] = *patch.Thumbnail
	}
	if patch.IsCompleted != nil {
		set["is_completed"] = *patch.IsCompleted
	}

	var s domain.Series
	err := r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSeriesNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *SeriesRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrSeriesNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes backing creator scoping and the
// newest-first listing.
func (r *SeriesRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "creator_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
