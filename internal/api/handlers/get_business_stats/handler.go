package get_business_stats

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/boinvit/booking-service/internal/api/handlers"
)

const (
	msgMissingBusinessID = "business ID is required"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	businessID := vars["businessId"]
	if businessID == "" {
		h.logger.Warn("GET /businesses/{id}/stats - Missing business ID")
		handlers.RespondBadRequest(w, msgMissingBusinessID)
		return
	}

	result, err := h.service.GetStats(r.Context(), businessID)
	if err != nil {
		h.logger.Error("GET /businesses/{id}/stats - Failed to get stats: business_id=%s, error=%v",
			businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /businesses/{id}/stats - Stats retrieved: business_id=%s", businessID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
