package update_hours

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/boinvit/booking-service/internal/api/handlers"
	"github.com/boinvit/booking-service/internal/service/businesses"
	"github.com/boinvit/booking-service/internal/service/businesses/models"
)

const (
	msgMissingBusinessID  = "business ID is required"
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "business not found"
	msgInvalidHours       = "invalid business hours"
)

type Handler struct {
	service BusinessService
	logger  Logger
}

func NewHandler(service BusinessService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/businesses/{businessId}/hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	businessID := vars["businessId"]
	if businessID == "" {
		h.logger.Warn("PUT /businesses/{id}/hours - Missing business ID")
		handlers.RespondBadRequest(w, msgMissingBusinessID)
		return
	}

	var req models.UpdateHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /businesses/{id}/hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateHours(r.Context(), businessID, &req); err != nil {
		switch {
		case errors.Is(err, businesses.ErrBusinessNotFound):
			h.logger.Warn("PUT /businesses/{id}/hours - Business not found: business_id=%s", businessID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, businesses.ErrInvalidHours), errors.Is(err, businesses.ErrInvalidInput):
			h.logger.Warn("PUT /businesses/{id}/hours - Invalid hours: business_id=%s, error=%v", businessID, err)
			handlers.RespondBadRequest(w, msgInvalidHours)

		default:
			h.logger.Error("PUT /businesses/{id}/hours - Failed to update hours: business_id=%s, error=%v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /businesses/{id}/hours - Hours updated: business_id=%s", businessID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
