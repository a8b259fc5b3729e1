package review

import "errors"

var (
	ErrReviewNotFound  = errors.New("review: review not found")
	ErrDuplicateReview = errors.New("review: booking already reviewed")
	ErrBuildQuery      = errors.New("review: failed to build query")
	ErrExecQuery       = errors.New("review: failed to execute query")
	ErrScanRow         = errors.New("review: failed to scan row")
)
