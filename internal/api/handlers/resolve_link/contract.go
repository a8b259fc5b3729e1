package resolve_link

import (
	"context"

	"github.com/boinvit/booking-service/internal/service/businesses/models"
)

type BusinessService interface {
	ResolveLink(ctx context.Context, payload string) (*models.ResolveLinkResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
