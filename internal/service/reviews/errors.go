package reviews

import "errors"

var (
	// ErrBookingNotFound is returned when the reviewed booking does not exist
	ErrBookingNotFound = errors.New("booking not found")

	// ErrBookingNotCompleted is returned when the booking has not happened yet
	ErrBookingNotCompleted = errors.New("only completed bookings can be reviewed")

	// ErrAlreadyReviewed is returned when the booking already has a review
	ErrAlreadyReviewed = errors.New("booking already reviewed")

	// ErrInvalidRating is returned when the rating is outside 1..5
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures
	ErrInternal = errors.New("service: internal error")
)
