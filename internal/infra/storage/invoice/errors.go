package invoice

import "errors"

var (
	ErrInvoiceNotFound = errors.New("invoice: invoice not found")
	ErrBuildQuery      = errors.New("invoice: failed to build query")
	ErrExecQuery       = errors.New("invoice: failed to execute query")
	ErrScanRow         = errors.New("invoice: failed to scan row")
)
