package list_payouts

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/boinvit/booking-service/internal/api/handlers"
)

const (
	msgMissingBusinessID = "business ID is required"
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

// Handle GET /api/v1/businesses/{businessId}/payouts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	businessID := vars["businessId"]
	if businessID == "" {
		h.logger.Warn("GET /businesses/{id}/payouts - Missing business ID")
		handlers.RespondBadRequest(w, msgMissingBusinessID)
		return
	}

	result, err := h.service.ListPayouts(r.Context(), businessID)
	if err != nil {
		h.logger.Error("GET /businesses/{id}/payouts - Failed to list payouts: business_id=%s, error=%v",
			businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /businesses/{id}/payouts - Payouts listed: business_id=%s, count=%d",
		businessID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
