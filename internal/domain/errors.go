package domain

import "errors"

var (
	ErrMovieNotFound     = errors.New("movie not found")
	ErrDuplicateTitle    = errors.New("movie title already exists")
	ErrInvalidRating     = errors.New("rating must be between 1 and 10")
	ErrEmptyReview       = errors.New("review cannot be empty")
	ErrSearchUnavailable = errors.New("search service unavailable")
)
