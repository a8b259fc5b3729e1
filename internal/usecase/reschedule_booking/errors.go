package reschedule_booking

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("reschedule_booking: booking not found")

	// ErrNotEligible is returned when the eligibility rules reject the move;
	// the wrapped message carries the user-facing reason
	ErrNotEligible = errors.New("reschedule_booking: booking is not eligible for reschedule")

	// ErrBusinessClosed is returned when the target date has no hours
	ErrBusinessClosed = errors.New("reschedule_booking: business is closed on this date")

	// ErrInvalidDate is returned when the target date is in the past
	ErrInvalidDate = errors.New("reschedule_booking: invalid booking date")

	// ErrInvalidTimeSlot is returned when the target time is off the grid
	// or outside business hours
	ErrInvalidTimeSlot = errors.New("reschedule_booking: invalid time slot")

	// ErrSlotNotAvailable is returned when the target slot is taken
	ErrSlotNotAvailable = errors.New("reschedule_booking: slot is not available")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("reschedule_booking: invalid input data")

	// ErrInternal is returned on internal usecase failures
	ErrInternal = errors.New("reschedule_booking: internal error")
)
