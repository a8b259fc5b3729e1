package payment

import "errors"

var (
	// ErrTransactionNotFound is returned when the transaction does not exist
	ErrTransactionNotFound = errors.New("payment.repository: transaction not found")

	// ErrDuplicateReference is returned when a transaction with the same
	// reference already exists
	ErrDuplicateReference = errors.New("payment.repository: duplicate transaction reference")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("payment.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("payment.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("payment.repository: failed to scan row")
)
