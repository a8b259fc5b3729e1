package get_invoice

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/boinvit/booking-service/internal/api/handlers"
	"github.com/boinvit/booking-service/internal/service/invoices"
)

const (
	msgMissingInvoiceID  = "invoice ID is required"
	msgMissingBusinessID = "businessId query parameter is required"
	msgNotFound          = "invoice not found"
)

type Handler struct {
	service InvoiceService
	logger  Logger
}

func NewHandler(service InvoiceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/invoices/{invoiceId}
// Query params: businessId (required, scopes the lookup)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	invoiceID := vars["invoiceId"]
	if invoiceID == "" {
		h.logger.Warn("GET /invoices/{id} - Missing invoice ID")
		handlers.RespondBadRequest(w, msgMissingInvoiceID)
		return
	}

	businessID := r.URL.Query().Get("businessId")
	if businessID == "" {
		h.logger.Warn("GET /invoices/{id} - Missing business ID: invoice_id=%s", invoiceID)
		handlers.RespondBadRequest(w, msgMissingBusinessID)
		return
	}

	result, err := h.service.GetByID(r.Context(), businessID, invoiceID)
	if err != nil {
		switch {
		case errors.Is(err, invoices.ErrInvoiceNotFound):
			h.logger.Warn("GET /invoices/{id} - Invoice not found: invoice_id=%s, business_id=%s",
				invoiceID, businessID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /invoices/{id} - Failed to get invoice: invoice_id=%s, error=%v", invoiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /invoices/{id} - Invoice retrieved: invoice_id=%s, number=%s", invoiceID, result.InvoiceNumber)
	handlers.RespondJSON(w, http.StatusOK, result)
}
