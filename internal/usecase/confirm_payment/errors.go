package confirm_payment

import "errors"

var (
	// ErrTransactionNotFound is returned when the reference is unknown
	ErrTransactionNotFound = errors.New("confirm_payment: transaction not found")

	// ErrAmountMismatch is returned when the gateway settled a different
	// amount than the one recorded at initiation
	ErrAmountMismatch = errors.New("confirm_payment: settled amount does not match")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("confirm_payment: invalid input data")

	// ErrInternal is returned on internal usecase failures
	ErrInternal = errors.New("confirm_payment: internal error")
)
