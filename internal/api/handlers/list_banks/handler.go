package list_banks

import (
	"net/http"

	"github.com/boinvit/booking-service/internal/api/handlers"
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

// Handle GET /api/v1/banks
// Used by the payment-config form to pick a settlement bank.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListBanks(r.Context())
	if err != nil {
		h.logger.Error("GET /banks - Failed to list banks: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /banks - Banks listed: count=%d", len(result.Banks))
	handlers.RespondJSON(w, http.StatusOK, result)
}
