package update_payment_config

import (
	"context"

	"github.com/boinvit/booking-service/internal/service/businesses/models"
)

type BusinessService interface {
	UpdatePaymentConfig(ctx context.Context, businessID string, req *models.UpdatePaymentConfigRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
