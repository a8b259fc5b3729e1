package list_banks

import (
	"context"

	"github.com/boinvit/booking-service/internal/service/payments/models"
)

type PaymentService interface {
	ListBanks(ctx context.Context) (*models.BankListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
