package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/boinvit/booking-service/internal/domain"
	businessRepo "github.com/boinvit/booking-service/internal/infra/storage/business"
)

// UseCase builds the bookable slot grid for one business day
type UseCase struct {
	bookingRepo  BookingRepository
	businesses   BusinessProvider
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the usecase
func NewUseCase(
	bookingRepo BookingRepository,
	businesses BusinessProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		businesses:   businesses,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute generates the daily grid
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: business=%s, service=%s, date=%s",
		req.BusinessID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Resolve the business
	business, err := uc.businesses.GetByID(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Warn("GetAvailableSlots: business id=%s not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get business id=%s: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	// 3. Resolve the service for its duration
	service, err := uc.businesses.GetService(ctx, req.BusinessID, req.ServiceID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	response := &Response{
		BusinessID:      req.BusinessID,
		ServiceID:       req.ServiceID,
		Date:            req.Date,
		DurationMinutes: service.DurationMinutes,
		Slots:           []Slot{},
	}

	// 4. A past date or a closed day yields an empty grid, not an error
	if isDateInPast(req.Date, now) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return response, nil
	}

	hours, open := business.Hours.ForDate(req.Date)
	if !open {
		uc.logger.Info("GetAvailableSlots: business id=%s closed on %s", req.BusinessID, req.Date.Format(domain.DateFormat))
		return response, nil
	}

	// 5. Load the day's bookings to tag taken slots
	filter := domain.BusinessBookingsFilter{
		BusinessID: req.BusinessID,
		StartDate:  &req.Date,
		EndDate:    &req.Date,
	}
	bookings, err := uc.bookingRepo.GetByBusinessWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Generate the grid
	slots, err := generateSlots(hours, business.SlotInterval(), service.DurationMinutes, bookings, req.Date, now)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	response.Slots = slots

	uc.logger.Info("GetAvailableSlots: generated %d slots for business=%s on %s",
		len(slots), req.BusinessID, req.Date.Format(domain.DateFormat))
	return response, nil
}
