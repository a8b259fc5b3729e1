package create_invoice

import (
	"errors"
	"net/http"

	"github.com/boinvit/booking-service/internal/api/handlers"
	"github.com/boinvit/booking-service/internal/service/invoices"
	"github.com/boinvit/booking-service/internal/service/invoices/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgBookingNotFound    = "booking not found"
	msgBookingMismatch    = "booking does not belong to this business"
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

// Handle POST /api/v1/invoices
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateInvoiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /invoices - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, invoices.ErrBookingNotFound):
			h.logger.Warn("POST /invoices - Booking not found: booking_id=%s", req.BookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, invoices.ErrBookingMismatch):
			h.logger.Warn("POST /invoices - Booking mismatch: business_id=%s, booking_id=%s",
				req.BusinessID, req.BookingID)
			handlers.RespondForbidden(w, msgBookingMismatch)

		case errors.Is(err, invoices.ErrInvalidInput):
			h.logger.Warn("POST /invoices - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /invoices - Failed to create invoice: business_id=%s, booking_id=%s, error=%v",
				req.BusinessID, req.BookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /invoices - Invoice created: invoice_id=%s, number=%s, booking_id=%s",
		result.ID, result.InvoiceNumber, req.BookingID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
