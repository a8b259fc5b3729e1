package list_reviews

import (
	"context"

	"github.com/boinvit/booking-service/internal/service/reviews/models"
)

type ReviewService interface {
	List(ctx context.Context, businessID string) (*models.ReviewListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
