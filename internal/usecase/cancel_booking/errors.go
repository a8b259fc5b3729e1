package cancel_booking

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("cancel_booking: booking not found")

	// ErrNotEligible is returned when the cancellation rules refuse; the
	// wrapped message carries the user-facing reason
	ErrNotEligible = errors.New("cancel_booking: booking cannot be cancelled")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrInternal is returned on internal usecase failures
	ErrInternal = errors.New("cancel_booking: internal error")
)
