package businesses

import (
	"context"

	"github.com/boinvit/booking-service/internal/domain"
)

// BusinessRepository is the business storage surface this service needs
type BusinessRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Business, error)
	UpdateHours(ctx context.Context, id string, hours domain.BusinessHours) error
	UpdatePaymentConfig(ctx context.Context, id string, cfg domain.PaymentConfig) error
	ListServices(ctx context.Context, businessID string) ([]*domain.Service, error)
	GetService(ctx context.Context, businessID, serviceID string) (*domain.Service, error)
}

// BusinessCache fronts the repository for the public booking page reads
type BusinessCache interface {
	Get(ctx context.Context, businessID string) (*domain.Business, error)
	Set(ctx context.Context, business *domain.Business) error
	Invalidate(ctx context.Context, businessID string) error
}

// Logger is the logging surface this service needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
