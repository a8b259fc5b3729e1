package update_invoice_status

import (
	"context"

	"github.com/boinvit/booking-service/internal/service/invoices/models"
)

type InvoiceService interface {
	UpdateStatus(ctx context.Context, businessID, invoiceID string, req *models.UpdateStatusRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
