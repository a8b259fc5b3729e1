package create_booking

import "errors"

var (
	// ErrBusinessNotFound is returned when the business does not exist
	ErrBusinessNotFound = errors.New("create_booking: business not found")

	// ErrServiceNotFound is returned when the service does not belong to the business
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrBusinessClosed is returned when the business has no hours on the date
	ErrBusinessClosed = errors.New("create_booking: business is closed on this date")

	// ErrInvalidDate is returned when the booking date is in the past
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidTimeSlot is returned when the start time is off the booking
	// grid or outside business hours
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrSlotNotAvailable is returned when the slot is already taken
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrTooLateToBook is returned when the slot's time has already passed
	ErrTooLateToBook = errors.New("create_booking: slot time has already passed")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal is returned on internal usecase failures
	ErrInternal = errors.New("create_booking: internal error")
)
