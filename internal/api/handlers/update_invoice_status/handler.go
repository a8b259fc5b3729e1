package update_invoice_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/boinvit/booking-service/internal/api/handlers"
	"github.com/boinvit/booking-service/internal/service/invoices"
	"github.com/boinvit/booking-service/internal/service/invoices/models"
)

const (
	msgMissingInvoiceID   = "invoice ID is required"
	msgMissingBusinessID  = "businessId query parameter is required"
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "invoice not found"
	msgInvalidStatus      = "invalid status transition"
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

// Handle PATCH /api/v1/invoices/{invoiceId}/status
// Query params: businessId (required, scopes the lookup)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	invoiceID := vars["invoiceId"]
	if invoiceID == "" {
		h.logger.Warn("PATCH /invoices/{id}/status - Missing invoice ID")
		handlers.RespondBadRequest(w, msgMissingInvoiceID)
		return
	}

	businessID := r.URL.Query().Get("businessId")
	if businessID == "" {
		h.logger.Warn("PATCH /invoices/{id}/status - Missing business ID: invoice_id=%s", invoiceID)
		handlers.RespondBadRequest(w, msgMissingBusinessID)
		return
	}

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /invoices/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), businessID, invoiceID, &req); err != nil {
		switch {
		case errors.Is(err, invoices.ErrInvoiceNotFound):
			h.logger.Warn("PATCH /invoices/{id}/status - Invoice not found: invoice_id=%s, business_id=%s",
				invoiceID, businessID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, invoices.ErrInvalidStatus), errors.Is(err, invoices.ErrInvalidInput):
			h.logger.Warn("PATCH /invoices/{id}/status - Invalid status: invoice_id=%s, status=%s, error=%v",
				invoiceID, req.Status, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /invoices/{id}/status - Failed to update status: invoice_id=%s, error=%v",
				invoiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /invoices/{id}/status - Status updated: invoice_id=%s, status=%s", invoiceID, req.Status)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
