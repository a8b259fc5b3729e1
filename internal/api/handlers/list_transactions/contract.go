package list_transactions

import (
	"context"

	"github.com/boinvit/booking-service/internal/service/payments/models"
)

type PaymentService interface {
	ListTransactions(ctx context.Context, businessID string, status *string) (*models.TransactionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
