package list_transactions

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/boinvit/booking-service/internal/api/handlers"
	"github.com/boinvit/booking-service/internal/service/payments"
)

const (
	msgMissingBusinessID = "business ID is required"
	msgInvalidStatus     = "invalid status filter"
)

type Handler struct {
	service PaymentService
	logger  Logger
}

func NewHandler(service PaymentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/transactions
// Query params: status (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	businessID := vars["businessId"]
	if businessID == "" {
		h.logger.Warn("GET /businesses/{id}/transactions - Missing business ID")
		handlers.RespondBadRequest(w, msgMissingBusinessID)
		return
	}

	var status *string
	if s := r.URL.Query().Get("status"); s != "" {
		status = &s
	}

	result, err := h.service.ListTransactions(r.Context(), businessID, status)
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrInvalidStatus):
			h.logger.Warn("GET /businesses/{id}/transactions - Invalid status: business_id=%s, status=%v",
				businessID, status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /businesses/{id}/transactions - Failed to list transactions: business_id=%s, error=%v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /businesses/{id}/transactions - Transactions listed: business_id=%s, count=%d",
		businessID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
