package handler

// --- Request types ---

type createSeriesRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	Genre       string `json:"genre"       validate:"required"`
	Thumbnail   string `json:"thumbnail"`
}

// updateSeriesRequest is a partial update; nil fields are left untouched.
type updateSeriesRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Genre       *string `json:"genre"`
	Thumbnail   *string `json:"thumbnail"`
	IsCompleted *bool   `json:"isCompleted"`
}

type deleteResponse struct {
	Message string `json:"message"`
}
