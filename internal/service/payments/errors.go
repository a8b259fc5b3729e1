package payments

import "errors"

var (
	// ErrInvalidStatus is returned on an unknown status filter
	ErrInvalidStatus = errors.New("invalid transaction status")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures
	ErrInternal = errors.New("service: internal error")
)
