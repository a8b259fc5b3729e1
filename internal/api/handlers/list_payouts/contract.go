package list_payouts

import (
	"context"

	"github.com/boinvit/booking-service/internal/service/payments/models"
)

type PaymentService interface {
	ListPayouts(ctx context.Context, businessID string) (*models.PayoutListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
