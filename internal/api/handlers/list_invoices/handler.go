package list_invoices

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/boinvit/booking-service/internal/api/handlers"
	"github.com/boinvit/booking-service/internal/service/invoices"
	"github.com/boinvit/booking-service/internal/service/invoices/models"
)

const (
	msgMissingBusinessID = "business ID is required"
	msgInvalidStatus     = "invalid status filter"
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

// Handle GET /api/v1/businesses/{businessId}/invoices
// Query params: status (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	businessID := vars["businessId"]
	if businessID == "" {
		h.logger.Warn("GET /businesses/{id}/invoices - Missing business ID")
		handlers.RespondBadRequest(w, msgMissingBusinessID)
		return
	}

	req := &models.ListInvoicesRequest{BusinessID: businessID}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, invoices.ErrInvalidStatus):
			h.logger.Warn("GET /businesses/{id}/invoices - Invalid status: business_id=%s, status=%v",
				businessID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /businesses/{id}/invoices - Failed to list invoices: business_id=%s, error=%v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /businesses/{id}/invoices - Invoices listed: business_id=%s, count=%d",
		businessID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
