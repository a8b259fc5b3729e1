package get_business_stats

import (
	"context"

	"github.com/boinvit/booking-service/internal/service/bookings/models"
)

type BookingService interface {
	GetStats(ctx context.Context, businessID string) (*models.BusinessStatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
