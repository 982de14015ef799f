package domain

import "errors"

var (
	// ErrInvalidInput marks malformed or missing request data. Wrapped
	// errors carry the field-level message shown to the client.
	ErrInvalidInput = errors.New("invalid input")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("user already exists")

	ErrSeriesNotFound  = errors.New("series not found")
	ErrEpisodeNotFound = errors.New("episode not found")
	ErrHistoryNotFound = errors.New("listening history not found")

	// ErrForbidden is returned when an authenticated user is not the
	// effective owner of the resource being mutated.
	ErrForbidden = errors.New("access forbidden")

	ErrRateLimited = errors.New("too many requests")
)
