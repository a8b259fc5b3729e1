package business

import "errors"

var (
	// ErrBusinessNotFound is returned when the business does not exist
	ErrBusinessNotFound = errors.New("business.repository: business not found")

	// ErrServiceNotFound is returned when the service does not exist
	ErrServiceNotFound = errors.New("business.repository: service not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("business.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("business.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("business.repository: failed to scan row")
)
