package get_business

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/boinvit/booking-service/internal/api/handlers"
	"github.com/boinvit/booking-service/internal/service/businesses"
)

const (
	msgMissingBusinessID = "business ID is required"
	msgNotFound          = "business not found"
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

// Handle GET /api/v1/businesses/{businessId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	businessID := vars["businessId"]
	if businessID == "" {
		h.logger.Warn("GET /businesses/{id} - Missing business ID")
		handlers.RespondBadRequest(w, msgMissingBusinessID)
		return
	}

	result, err := h.service.GetByID(r.Context(), businessID)
	if err != nil {
		switch {
		case errors.Is(err, businesses.ErrBusinessNotFound):
			h.logger.Warn("GET /businesses/{id} - Business not found: business_id=%s", businessID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /businesses/{id} - Failed to get business: business_id=%s, error=%v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /businesses/{id} - Business retrieved: business_id=%s", businessID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
