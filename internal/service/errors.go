package service

import "errors"

// Service-level errors
var (
	// ErrCardNotFound is returned when a completion refers to a card ID
	// absent from the content pool.
	ErrCardNotFound = errors.New("card not found in content pool")

	// ErrInvalidRating is returned when a reflection rating is outside
	// the accepted 0-100 range.
	ErrInvalidRating = errors.New("consistency rating must be between 0 and 100")
)
