package resolve_link

import (
	"errors"
	"net/http"

	"github.com/boinvit/booking-service/internal/api/handlers"
	"github.com/boinvit/booking-service/internal/service/businesses"
)

const (
	msgMissingURL = "url query parameter is required"
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

// Handle GET /api/v1/resolve-link
// Query params: url (required), typically a scanned QR payload
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	payload := r.URL.Query().Get("url")
	if payload == "" {
		h.logger.Warn("GET /resolve-link - Missing url parameter")
		handlers.RespondBadRequest(w, msgMissingURL)
		return
	}

	result, err := h.service.ResolveLink(r.Context(), payload)
	if err != nil {
		switch {
		case errors.Is(err, businesses.ErrInvalidInput):
			h.logger.Warn("GET /resolve-link - Invalid payload: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /resolve-link - Failed to resolve: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /resolve-link - Link resolved: kind=%s", result.Kind)
	handlers.RespondJSON(w, http.StatusOK, result)
}
