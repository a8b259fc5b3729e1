package booking_calendar

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/boinvit/booking-service/internal/api/handlers"
	"github.com/boinvit/booking-service/internal/service/bookings"
)

const (
	msgMissingBookingID = "booking ID is required"
	msgNotFound         = "booking not found"
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

// Handle GET /api/v1/bookings/{bookingId}/calendar.ics
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID := vars["bookingId"]
	if bookingID == "" {
		h.logger.Warn("GET /bookings/{id}/calendar.ics - Missing booking ID")
		handlers.RespondBadRequest(w, msgMissingBookingID)
		return
	}

	calendar, err := h.service.ExportCalendar(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id}/calendar.ics - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /bookings/{id}/calendar.ics - Failed to export calendar: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{id}/calendar.ics - Calendar exported: booking_id=%s", bookingID)
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="booking.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(calendar))
}
