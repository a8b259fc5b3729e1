package invoices

import "errors"

var (
	// ErrInvoiceNotFound is returned when the invoice does not exist
	ErrInvoiceNotFound = errors.New("invoice not found")

	// ErrBookingNotFound is returned when the billed booking does not exist
	ErrBookingNotFound = errors.New("booking not found")

	// ErrBookingMismatch is returned when the booking belongs to another business
	ErrBookingMismatch = errors.New("booking does not belong to this business")

	// ErrInvalidStatus is returned on an unknown or disallowed status value
	ErrInvalidStatus = errors.New("invalid invoice status")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures
	ErrInternal = errors.New("service: internal error")
)
