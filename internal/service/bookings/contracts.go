package bookings

import (
	"context"
	"time"

	"github.com/boinvit/booking-service/internal/domain"
	bookingRepo "github.com/boinvit/booking-service/internal/infra/storage/booking"
)

// BookingRepository is the booking storage surface this service needs
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByBusinessWithFilter(ctx context.Context, filter domain.BusinessBookingsFilter) ([]*domain.Booking, error)
	SearchByContact(ctx context.Context, email, phone string) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	GetBusinessStats(ctx context.Context, businessID string, date time.Time) (*bookingRepo.BusinessStats, error)
}

// TimeProvider supplies the current time (swappable in tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface this service needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time source
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
