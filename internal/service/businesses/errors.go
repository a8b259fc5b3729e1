package businesses

import "errors"

var (
	// ErrBusinessNotFound is returned when the business does not exist
	ErrBusinessNotFound = errors.New("business not found")

	// ErrInvalidHours is returned when a hours update is malformed
	ErrInvalidHours = errors.New("invalid business hours")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures
	ErrInternal = errors.New("service: internal error")
)
