package domain

import "time"

// Series is a creator-owned collection of episodes (a show).
// Deleting a series cascades to its episodes.
type Series struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Thumbnail   string    `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`
	Genre       string    `json:"genre" bson:"genre"`
	IsCompleted bool      `json:"is_completed" bson:"is_completed"`
	CreatorID   string    `json:"creator_id" bson:"creator_id"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// SeriesCounts carries the computed annotations attached to list/detail views.
type SeriesCounts struct {
	Episodes int64 `json:"episodes"`
	Likes    int64 `json:"likes"`
}

// SeriesWithMeta is a series annotated with its creator and counts.
type SeriesWithMeta struct {
	Series
	Creator CreatorSummary `json:"creator"`
	Counts  SeriesCounts   `json:"_count"`
}

// SeriesPatch carries the optional fields of a partial series update.
// Nil pointers leave the stored value untouched.
type SeriesPatch struct {
	Title       *string
	Description *string
	Genre       *string
	Thumbnail   *string
	IsCompleted *bool
}
