package list_reviews

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/boinvit/booking-service/internal/api/handlers"
)

const (
	msgMissingBusinessID = "business ID is required"
)

type Handler struct {
	service ReviewService
	logger  Logger
}

func NewHandler(service ReviewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	businessID := vars["businessId"]
	if businessID == "" {
		h.logger.Warn("GET /businesses/{id}/reviews - Missing business ID")
		handlers.RespondBadRequest(w, msgMissingBusinessID)
		return
	}

	result, err := h.service.List(r.Context(), businessID)
	if err != nil {
		h.logger.Error("GET /businesses/{id}/reviews - Failed to list reviews: business_id=%s, error=%v",
			businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /businesses/{id}/reviews - Reviews listed: business_id=%s, count=%d, avg=%.1f",
		businessID, result.Total, result.AverageRating)
	handlers.RespondJSON(w, http.StatusOK, result)
}
