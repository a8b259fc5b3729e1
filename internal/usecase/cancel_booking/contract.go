package cancel_booking

import (
	"context"
	"time"

	"github.com/boinvit/booking-service/internal/domain"
	"github.com/boinvit/booking-service/internal/infra/stream"
)

// BookingRepository is the slice of booking storage this usecase needs
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
}

// EventPublisher emits booking lifecycle events
type EventPublisher interface {
	PublishBookingEvent(ctx context.Context, topic string, event stream.BookingEvent) error
}

// TimeProvider supplies the current time (swappable in tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface this usecase needs
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
