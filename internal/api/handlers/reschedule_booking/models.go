package reschedule_booking

import (
	"time"

	"github.com/boinvit/booking-service/internal/domain"
	rescheduleBooking "github.com/boinvit/booking-service/internal/usecase/reschedule_booking"
	"github.com/boinvit/booking-service/pkg/types"
)

// RescheduleBookingRequest HTTP request model
type RescheduleBookingRequest struct {
	BookingDate string `json:"bookingDate"` // "2026-03-15"
	StartTime   string `json:"startTime"`   // "10:00"
}

// RescheduleBookingResponse HTTP response model
type RescheduleBookingResponse struct {
	ID              string `json:"id"`
	BusinessID      string `json:"businessId"`
	ServiceID       string `json:"serviceId"`
	ServiceName     string `json:"serviceName"`
	BookingDate     string `json:"bookingDate"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`
	RescheduleCount int    `json:"rescheduleCount"`
	UpdatedAt       string `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *RescheduleBookingRequest) ToUseCaseRequest(bookingID string) (*rescheduleBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &rescheduleBooking.Request{
		BookingID: bookingID,
		Date:      bookingDate,
		StartTime: startTime,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *rescheduleBooking.Response) *RescheduleBookingResponse {
	return &RescheduleBookingResponse{
		ID:              resp.ID,
		BusinessID:      resp.BusinessID,
		ServiceID:       resp.ServiceID,
		ServiceName:     resp.ServiceName,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		RescheduleCount: resp.RescheduleCount,
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
