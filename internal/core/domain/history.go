package domain

import "time"

// completionTolerance is the fixed business policy: a position within this
// many seconds of the episode's end counts as finished.
const completionTolerance = 5

// ListeningHistory records per-user, per-episode playback progress.
// There is exactly one row per (UserID, EpisodeID) pair; writes upsert.
type ListeningHistory struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	UserID       string    `json:"user_id" bson:"user_id"`
	EpisodeID    string    `json:"episode_id" bson:"episode_id"`
	Progress     float64   `json:"progress" bson:"progress"`
	Completed    bool      `json:"completed" bson:"completed"`
	LastPlayedAt time.Time `json:"last_played_at" bson:"last_played_at"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// ProgressCompleted applies the completion rule for an episode of the given
// duration (seconds).
func ProgressCompleted(progress float64, duration int) bool {
	return progress >= float64(duration-completionTolerance)
}

// Like marks a user's like of a series. Only its per-series count is read;
// there are no like/unlike endpoints.
type Like struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	UserID    string    `json:"user_id" bson:"user_id"`
	SeriesID  string    `json:"series_id" bson:"series_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
