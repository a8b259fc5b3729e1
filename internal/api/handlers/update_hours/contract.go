package update_hours

import (
	"context"

	"github.com/boinvit/booking-service/internal/service/businesses/models"
)

type BusinessService interface {
	UpdateHours(ctx context.Context, businessID string, req *models.UpdateHoursRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
