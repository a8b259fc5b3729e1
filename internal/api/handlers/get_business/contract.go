package get_business

import (
	"context"

	"github.com/boinvit/booking-service/internal/service/businesses/models"
)

type BusinessService interface {
	GetByID(ctx context.Context, id string) (*models.BusinessResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
