package search_bookings

import (
	"errors"
	"net/http"

	"github.com/boinvit/booking-service/internal/api/handlers"
	"github.com/boinvit/booking-service/internal/service/bookings"
	"github.com/boinvit/booking-service/internal/service/bookings/models"
)

const (
	msgMissingContact = "email or phone query parameter is required"
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

// Handle GET /api/v1/bookings/search
// Query params: email or phone (at least one required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	phone := r.URL.Query().Get("phone")
	if email == "" && phone == "" {
		h.logger.Warn("GET /bookings/search - Missing email and phone")
		handlers.RespondBadRequest(w, msgMissingContact)
		return
	}

	req := &models.SearchBookingsRequest{
		Email: email,
		Phone: phone,
	}

	result, err := h.service.Search(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings/search - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /bookings/search - Failed to search bookings: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/search - Bookings found: count=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
