package content

import "errors"

var (
	// ErrNotFound is returned when the requested item does not exist.
	ErrNotFound = errors.New("content item not found")

	// ErrDuplicateSlug is returned when a slug already exists in the collection.
	ErrDuplicateSlug = errors.New("slug already exists")

	// ErrMissingFields is returned when required fields are absent.
	ErrMissingFields = errors.New("required fields are missing")

	// ErrInvalidRating is returned for testimonial ratings outside 1..5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrUnknownParameter is returned when a parameter key does not exist.
	ErrUnknownParameter = errors.New("unknown parameter key")
)
