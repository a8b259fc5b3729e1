package payments

import (
	"context"

	"github.com/boinvit/booking-service/internal/domain"
	"github.com/boinvit/booking-service/internal/integrations/paystack"
)

// TransactionRepository is the payment storage surface this service needs
type TransactionRepository interface {
	ListByBusiness(ctx context.Context, businessID string, status *domain.TransactionStatus) ([]*domain.PaymentTransaction, error)
	ListPayouts(ctx context.Context, businessID string) ([]*domain.BusinessPayout, error)
}

// GatewayClient provides gateway reference data
type GatewayClient interface {
	ListBanks(ctx context.Context) ([]paystack.Bank, error)
}

// Logger is the logging surface this service needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
