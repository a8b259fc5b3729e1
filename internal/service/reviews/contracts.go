package reviews

import (
	"context"

	"github.com/boinvit/booking-service/internal/domain"
)

// ReviewRepository is the review storage surface this service needs
type ReviewRepository interface {
	Create(ctx context.Context, rev *domain.Review) (*domain.Review, error)
	ListByBusiness(ctx context.Context, businessID string) ([]*domain.Review, error)
	AverageRating(ctx context.Context, businessID string) (float64, int, error)
}

// BookingRepository resolves the booking a review rates
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
}

// Logger is the logging surface this service needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
