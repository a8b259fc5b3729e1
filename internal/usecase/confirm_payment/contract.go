package confirm_payment

import (
	"context"
	"time"

	"github.com/boinvit/booking-service/internal/domain"
	"github.com/boinvit/booking-service/internal/infra/stream"
	"github.com/boinvit/booking-service/internal/integrations/paystack"
)

// TransactionRepository persists payment transactions
type TransactionRepository interface {
	GetByReference(ctx context.Context, reference string) (*domain.PaymentTransaction, error)
	MarkCompleted(ctx context.Context, reference, gatewayReference string, paidAt time.Time) error
	UpdateStatus(ctx context.Context, reference string, status domain.TransactionStatus) error
}

// BookingRepository is the slice of booking storage this usecase needs
type BookingRepository interface {
	MarkPaymentCompleted(ctx context.Context, id string, reference string) error
	MarkPaymentFailed(ctx context.Context, id string) error
}

// InvoiceRepository settles the invoice tied to a booking
type InvoiceRepository interface {
	MarkPaidByBooking(ctx context.Context, bookingID string, paidAt time.Time) error
}

// GatewayClient verifies transactions server-to-server
type GatewayClient interface {
	VerifyTransaction(ctx context.Context, reference string) (*paystack.VerifyData, error)
}

// EventPublisher emits payment events
type EventPublisher interface {
	PublishPaymentEvent(ctx context.Context, event stream.PaymentEvent) error
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
