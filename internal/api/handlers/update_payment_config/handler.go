package update_payment_config

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
	msgInvalidConfig      = "invalid payment configuration"
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

// Handle PUT /api/v1/businesses/{businessId}/payment-config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	businessID := vars["businessId"]
	if businessID == "" {
		h.logger.Warn("PUT /businesses/{id}/payment-config - Missing business ID")
		handlers.RespondBadRequest(w, msgMissingBusinessID)
		return
	}

	var req models.UpdatePaymentConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /businesses/{id}/payment-config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdatePaymentConfig(r.Context(), businessID, &req); err != nil {
		switch {
		case errors.Is(err, businesses.ErrBusinessNotFound):
			h.logger.Warn("PUT /businesses/{id}/payment-config - Business not found: business_id=%s", businessID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, businesses.ErrInvalidInput):
			h.logger.Warn("PUT /businesses/{id}/payment-config - Invalid config: business_id=%s, error=%v",
				businessID, err)
			handlers.RespondBadRequest(w, msgInvalidConfig)

		default:
			h.logger.Error("PUT /businesses/{id}/payment-config - Failed to update config: business_id=%s, error=%v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /businesses/{id}/payment-config - Payment config updated: business_id=%s", businessID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
