package initiate_payment

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("initiate_payment: booking not found")

	// ErrBookingNotPayable is returned when the booking is cancelled,
	// finished, or already paid
	ErrBookingNotPayable = errors.New("initiate_payment: booking is not payable")

	// ErrInvalidAmount is returned when the booking carries a non-positive amount
	ErrInvalidAmount = errors.New("initiate_payment: invalid payment amount")

	// ErrGatewayUnavailable is returned when the gateway refuses or cannot
	// be reached
	ErrGatewayUnavailable = errors.New("initiate_payment: payment gateway unavailable")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("initiate_payment: invalid input data")

	// ErrInternal is returned on internal usecase failures
	ErrInternal = errors.New("initiate_payment: internal error")
)
