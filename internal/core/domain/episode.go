package domain

import "time"

// Episode is a single audio item belonging to one series.
// Listings are ordered by EpisodeNumber ascending; the number is not
// required to be unique within a series.
type Episode struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	Title         string    `json:"title" bson:"title"`
	Description   string    `json:"description,omitempty" bson:"description,omitempty"`
	AudioURL      string    `json:"audio_url" bson:"audio_url"`
	Duration      int       `json:"duration" bson:"duration"`
	EpisodeNumber int       `json:"episode_number" bson:"episode_number"`
	SeriesID      string    `json:"series_id" bson:"series_id"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}

// EpisodeWithSeries is an episode annotated with its parent series,
// returned by the episode detail endpoint.
type EpisodeWithSeries struct {
	Episode
	Series SeriesWithMeta `json:"series"`
}

// EpisodePatch carries the optional fields of a partial episode update.
type EpisodePatch struct {
	Title         *string
	Description   *string
	EpisodeNumber *int
}
