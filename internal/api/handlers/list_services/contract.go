package list_services

import (
	"context"

	"github.com/boinvit/booking-service/internal/service/businesses/models"
)

type BusinessService interface {
	ListServices(ctx context.Context, businessID string) (*models.ServiceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
