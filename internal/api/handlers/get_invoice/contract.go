package get_invoice

import (
	"context"

	"github.com/boinvit/booking-service/internal/service/invoices/models"
)

type InvoiceService interface {
	GetByID(ctx context.Context, businessID, invoiceID string) (*models.InvoiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
