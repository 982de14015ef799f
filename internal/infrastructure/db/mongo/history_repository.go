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

const (
	historyCollection = "listening_history"
	likesCollection   = "likes"
)

type HistoryRepository struct {
	coll *mongo.Collection
}

func NewHistoryRepository(db *mongo.Database) *HistoryRepository {
	return &HistoryRepository{coll: db.Collection(historyCollection)}
}

// Upsert writes the single (userID, episodeID) row. The unique compound
// index guarantees at most one document per pair even under concurrent
// writes; last_played_at advances on every call.
func (r *HistoryRepository) Upsert(ctx context.Context, userID, episodeID string, progress float64, completed bool) (*domain.ListeningHistory, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	filter := bson.M{"user_id": userID, "episode_id": episodeID}
	update := bson.M{
		"$set": bson.M{
			"progress":       progress,
			"completed":      completed,
			"last_played_at": now,
			"updated_at":     now,
		},
		"$setOnInsert": bson.M{
			"_id":        primitive.NewObjectID().Hex(),
			"user_id":    userID,
			"episode_id": episodeID,
			"created_at": now,
		},
	}

	var row domain.ListeningHistory
	err := r.coll.FindOneAndUpdate(
		ctx,
		filter,
		update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&row)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *HistoryRepository) FindByUserAndEpisode(ctx context.Context, userID, episodeID string) (*domain.ListeningHistory, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var row domain.ListeningHistory
	err := r.coll.FindOne(ctx, bson.M{"user_id": userID, "episode_id": episodeID}).Decode(&row)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrHistoryNotFound
		}
		return nil, err
	}
	return &row, nil
}

// EnsureIndexes creates the unique (user_id, episode_id) index that makes
// the upsert key real.
func (r *HistoryRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "episode_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// LikeRepository reads like counts for series annotations.
type LikeRepository struct {
	coll *mongo.Collection
}

func NewLikeRepository(db *mongo.Database) *LikeRepository {
	return &LikeRepository{coll: db.Collection(likesCollection)}
}

func (r *LikeRepository) CountBySeries(ctx context.Context, seriesID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.coll.CountDocuments(ctx, bson.M{"series_id": seriesID})
}
