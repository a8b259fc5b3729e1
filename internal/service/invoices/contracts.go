package invoices

import (
	"context"
	"time"

	"github.com/boinvit/booking-service/internal/domain"
)

// InvoiceRepository is the invoice storage surface this service needs
type InvoiceRepository interface {
	Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error)
	GetByID(ctx context.Context, businessID, invoiceID string) (*domain.Invoice, error)
	ListByBusiness(ctx context.Context, businessID string, status *domain.InvoiceStatus) ([]*domain.Invoice, error)
	UpdateStatus(ctx context.Context, businessID, invoiceID string, status domain.InvoiceStatus) error
}

// BookingRepository resolves the booking an invoice bills
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
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
