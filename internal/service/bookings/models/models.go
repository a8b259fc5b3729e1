package models

import (
	"errors"
	"time"

	"github.com/boinvit/booking-service/internal/domain"
	bookingRepo "github.com/boinvit/booking-service/internal/infra/storage/booking"
)

var (
	// ErrInvalidStatus is returned when a status string is not a known value
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request models

// SearchBookingsRequest looks up a client's booking history by contact
type SearchBookingsRequest struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// GetBusinessBookingsRequest lists a business's bookings
type GetBusinessBookingsRequest struct {
	BusinessID      string     `json:"businessId"`
	StartDate       *time.Time `json:"startDate,omitempty"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	Status          *string    `json:"status,omitempty"`
	IncludeInactive bool       `json:"includeInactive,omitempty"`
}

// ToDomainFilter converts the request into a domain filter
func (r *GetBusinessBookingsRequest) ToDomainFilter() (domain.BusinessBookingsFilter, error) {
	filter := domain.BusinessBookingsFilter{
		BusinessID:      r.BusinessID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// ToDomainBookingStatus validates and converts a status string
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	if !domain.ValidBookingStatus(s) {
		return "", ErrInvalidStatus
	}
	return domain.BookingStatus(s), nil
}

// Response models

// BookingResponse is the booking wire representation
type BookingResponse struct {
	ID         string `json:"id"`
	BusinessID string `json:"businessId"`
	ServiceID  string `json:"serviceId"`
	ClientID   string `json:"clientId"`

	ClientName  string `json:"clientName"`
	ClientEmail string `json:"clientEmail"`
	ClientPhone string `json:"clientPhone,omitempty"`

	ServiceName     string `json:"serviceName"`
	BookingDate     string `json:"bookingDate"` // "2026-09-15"
	StartTime       string `json:"startTime"`   // "10:00"
	DurationMinutes int    `json:"durationMinutes"`

	Status           string  `json:"status"`
	PaymentStatus    string  `json:"paymentStatus"`
	PaymentReference *string `json:"paymentReference,omitempty"`

	TotalAmount float64 `json:"totalAmount"`
	Currency    string  `json:"currency"`

	RescheduleCount int     `json:"rescheduleCount"`
	Notes           *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse is a list of bookings
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// BusinessStatsResponse feeds the dashboard widgets
type BusinessStatsResponse struct {
	Date              string  `json:"date"`
	BookingsTotal     int     `json:"bookingsTotal"`
	BookingsConfirmed int     `json:"bookingsConfirmed"`
	BookingsPending   int     `json:"bookingsPending"`
	Revenue           float64 `json:"revenue"`
	RevenueFormatted  string  `json:"revenueFormatted"`
	PendingPayments   int     `json:"pendingPayments"`
}

// FromDomainBooking converts a domain booking into its wire form
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:               b.ID,
		BusinessID:       b.BusinessID,
		ServiceID:        b.ServiceID,
		ClientID:         b.ClientID,
		ClientName:       b.ClientName,
		ClientEmail:      b.ClientEmail,
		ClientPhone:      b.ClientPhone,
		ServiceName:      b.ServiceName,
		BookingDate:      b.BookingDate.Format(domain.DateFormat),
		StartTime:        b.BookingTime.String(),
		DurationMinutes:  b.DurationMinutes,
		Status:           string(b.Status),
		PaymentStatus:    string(b.PaymentStatus),
		PaymentReference: b.PaymentReference,
		TotalAmount:      b.TotalAmount,
		Currency:         b.Currency,
		RescheduleCount:  b.RescheduleCount,
		Notes:            b.Notes,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

// FromDomainBookings converts a slice of bookings
func FromDomainBookings(bookings []*domain.Booking) *BookingListResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, *FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: out, Total: len(out)}
}

// FromBusinessStats converts repository aggregates
func FromBusinessStats(s *bookingRepo.BusinessStats, date time.Time, revenueFormatted string) *BusinessStatsResponse {
	return &BusinessStatsResponse{
		Date:              date.Format(domain.DateFormat),
		BookingsTotal:     s.BookingsTotal,
		BookingsConfirmed: s.BookingsConfirmed,
		BookingsPending:   s.BookingsPending,
		Revenue:           s.Revenue,
		RevenueFormatted:  revenueFormatted,
		PendingPayments:   s.PendingPayments,
	}
}
