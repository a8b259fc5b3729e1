package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/boinvit/booking-service/internal/domain"
	bookingRepo "github.com/boinvit/booking-service/internal/infra/storage/booking"
	"github.com/boinvit/booking-service/internal/service/bookings/models"
	"github.com/boinvit/booking-service/pkg/ics"
	"github.com/boinvit/booking-service/pkg/money"
)

// Service reads bookings for the dashboard and client history flows
type Service struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates the bookings service
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID fetches one booking
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// Search finds a client's bookings by email or phone, the entry point for the
// "manage my booking" flow
func (s *Service) Search(ctx context.Context, req *models.SearchBookingsRequest) (*models.BookingListResponse, error) {
	email := strings.TrimSpace(req.Email)
	phone := strings.TrimSpace(req.Phone)
	if email == "" && phone == "" {
		return nil, fmt.Errorf("%w: email or phone is required", ErrInvalidInput)
	}

	s.logger.Info("Search: email=%s phone=%s", email, phone)

	bookings, err := s.bookingRepo.SearchByContact(ctx, email, phone)
	if err != nil {
		s.logger.Error("Search: repository error: %v", err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookings(bookings), nil
}

// GetBusinessBookings lists a business's bookings with optional filters
func (s *Service) GetBusinessBookings(ctx context.Context, req *models.GetBusinessBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetBusinessBookings: business=%s, status=%v", req.BusinessID, req.Status)

	if req.BusinessID == "" {
		return nil, fmt.Errorf("%w: businessId is required", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetBusinessBookings: invalid status=%v", req.Status)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidStatus)
	}

	bookings, err := s.bookingRepo.GetByBusinessWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetBusinessBookings: repository error for business=%s: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: GetBusinessBookings - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookings(bookings), nil
}

// GetStats aggregates the dashboard widgets for today
func (s *Service) GetStats(ctx context.Context, businessID string) (*models.BusinessStatsResponse, error) {
	if businessID == "" {
		return nil, fmt.Errorf("%w: businessId is required", ErrInvalidInput)
	}

	now := s.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	stats, err := s.bookingRepo.GetBusinessStats(ctx, businessID, today)
	if err != nil {
		s.logger.Error("GetStats: repository error for business=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: GetStats - repository error: %v", ErrInternal, err)
	}

	// currency for the formatted figure comes from the day's bookings; fall
	// back to a bare number when there are none
	currency := ""
	if bookings, err := s.bookingRepo.GetByBusinessWithFilter(ctx, domain.BusinessBookingsFilter{
		BusinessID: businessID,
		StartDate:  &today,
		EndDate:    &today,
	}); err == nil && len(bookings) > 0 {
		currency = bookings[0].Currency
	}

	return models.FromBusinessStats(stats, today, strings.TrimSpace(money.Format(stats.Revenue, currency))), nil
}

// ExportCalendar renders a booking as an iCalendar document with a reminder
// one hour before the appointment
func (s *Service) ExportCalendar(ctx context.Context, id string) (string, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return "", ErrBookingNotFound
		}
		s.logger.Error("ExportCalendar: repository error for booking id=%s: %v", id, err)
		return "", fmt.Errorf("%w: ExportCalendar - repository error: %v", ErrInternal, err)
	}

	start, err := booking.StartAt()
	if err != nil {
		s.logger.Error("ExportCalendar: malformed time on booking id=%s: %v", id, err)
		return "", fmt.Errorf("%w: ExportCalendar - malformed booking time: %v", ErrInternal, err)
	}

	description := fmt.Sprintf("Booking for %s (%s)", booking.ServiceName, booking.ClientName)

	return ics.Encode(ics.Event{
		UID:         booking.ID,
		Summary:     booking.ServiceName,
		Description: description,
		Start:       start,
		End:         start.Add(time.Duration(booking.DurationMinutes) * time.Minute),
	}), nil
}
