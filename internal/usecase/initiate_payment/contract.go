package initiate_payment

import (
	"context"
	"time"

	"github.com/boinvit/booking-service/internal/domain"
	"github.com/boinvit/booking-service/internal/integrations/paystack"
)

// BookingRepository is the slice of booking storage this usecase needs
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
}

// BusinessProvider resolves the business for its payment configuration
type BusinessProvider interface {
	GetByID(ctx context.Context, id string) (*domain.Business, error)
}

// TransactionRepository persists payment transactions
type TransactionRepository interface {
	CreateTransaction(ctx context.Context, tx *domain.PaymentTransaction) (*domain.PaymentTransaction, error)
	SetAuthorization(ctx context.Context, reference, authorizationURL string) error
}

// GatewayClient opens checkout sessions at the payment gateway
type GatewayClient interface {
	InitializeTransaction(ctx context.Context, req paystack.InitializeRequest) (*paystack.InitializeData, error)
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
