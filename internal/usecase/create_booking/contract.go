package create_booking

import (
	"context"
	"time"

	"github.com/boinvit/booking-service/internal/domain"
	"github.com/boinvit/booking-service/internal/infra/stream"
)

// BookingRepository is the slice of booking storage this usecase needs
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByBusinessWithFilter(ctx context.Context, filter domain.BusinessBookingsFilter) ([]*domain.Booking, error)
}

// BusinessProvider resolves businesses and their services
type BusinessProvider interface {
	GetByID(ctx context.Context, id string) (*domain.Business, error)
	GetService(ctx context.Context, businessID, serviceID string) (*domain.Service, error)
}

// ClientRepository deduplicates clients per business by email
type ClientRepository interface {
	Upsert(ctx context.Context, client *domain.Client) (*domain.Client, error)
}

// EventPublisher emits booking lifecycle events
type EventPublisher interface {
	PublishBookingEvent(ctx context.Context, topic string, event stream.BookingEvent) error
}

// TransactionManager runs a function inside a database transaction
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
