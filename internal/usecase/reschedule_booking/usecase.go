package reschedule_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/boinvit/booking-service/internal/domain"
	bookingRepo "github.com/boinvit/booking-service/internal/infra/storage/booking"
	businessRepo "github.com/boinvit/booking-service/internal/infra/storage/business"
	"github.com/boinvit/booking-service/internal/infra/stream"
	"github.com/boinvit/booking-service/pkg/types"
)

// UseCase moves a confirmed booking to a new slot, gated by the eligibility
// rules: one reschedule per booking, never within the change window
type UseCase struct {
	bookingRepo  BookingRepository
	businesses   BusinessProvider
	events       EventPublisher
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the usecase
func NewUseCase(
	bookingRepo BookingRepository,
	businesses BusinessProvider,
	events EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		businesses:   businesses,
		events:       events,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute performs the move
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleBooking: booking=%s, date=%s, time=%s",
		req.BookingID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	if isDateInPast(req.Date, now) {
		uc.logger.Warn("RescheduleBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}
	if isSameDay(req.Date, now) && req.StartTime.IsBefore(types.NewTimeString(now)) {
		uc.logger.Warn("RescheduleBooking: slot %s has already passed", req.StartTime)
		return nil, ErrInvalidTimeSlot
	}

	// 2. Load the booking
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("RescheduleBooking: booking id=%s not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("RescheduleBooking: failed to get booking id=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 3. Eligibility: confirmed, never moved before, outside the change window
	if outcome := domain.CheckReschedulable(booking, now); !outcome.IsEligible() {
		uc.logger.Warn("RescheduleBooking: booking id=%s refused: %s", req.BookingID, outcome)
		return nil, fmt.Errorf("%w: %s", ErrNotEligible, outcome.Message())
	}

	// 4. The target slot must exist on the business grid
	business, err := uc.businesses.GetByID(ctx, booking.BusinessID)
	if err != nil {
		uc.logger.Error("RescheduleBooking: failed to get business id=%s: %v", booking.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	service, err := uc.businesses.GetService(ctx, booking.BusinessID, booking.ServiceID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrServiceNotFound) {
			// the service was removed since booking; keep the recorded duration
			service = &domain.Service{DurationMinutes: booking.DurationMinutes}
		} else {
			uc.logger.Error("RescheduleBooking: failed to get service id=%s: %v", booking.ServiceID, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
	}

	hours, open := business.Hours.ForDate(req.Date)
	if !open {
		uc.logger.Warn("RescheduleBooking: business id=%s closed on %s", booking.BusinessID, req.Date.Format(domain.DateFormat))
		return nil, ErrBusinessClosed
	}
	if err := validateSlotFits(hours, business.SlotInterval(), service.DurationMinutes, req.StartTime); err != nil {
		uc.logger.Warn("RescheduleBooking: slot validation failed: %v", err)
		return nil, err
	}

	// 5. Availability check and move in one serializable transaction
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		filter := domain.BusinessBookingsFilter{
			BusinessID: booking.BusinessID,
			StartDate:  &req.Date,
			EndDate:    &req.Date,
		}
		dayBookings, err := uc.bookingRepo.GetByBusinessWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// the booking itself does not block its own target slot
		taken, err := hasOverlap(req.StartTime, service.DurationMinutes, dayBookings, booking.ID)
		if err != nil {
			return fmt.Errorf("%w: failed to check overlap: %v", ErrInternal, err)
		}
		if taken {
			uc.logger.Warn("RescheduleBooking: slot %s on %s already taken", req.StartTime, req.Date.Format(domain.DateFormat))
			return ErrSlotNotAvailable
		}

		if err := uc.bookingRepo.Reschedule(txCtx, booking.ID, req.Date, req.StartTime.String()); err != nil {
			uc.logger.Error("RescheduleBooking: failed to reschedule booking id=%s: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to reschedule booking: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleBooking: booking id=%s moved to %s %s",
		booking.ID, req.Date.Format(domain.DateFormat), req.StartTime)

	if err := uc.events.PublishBookingEvent(ctx, stream.TopicBookingRescheduled, stream.BookingEvent{
		BookingID:    booking.ID,
		BusinessID:   booking.BusinessID,
		ClientEmail:  booking.ClientEmail,
		ServiceName:  booking.ServiceName,
		BookingDate:  req.Date.Format(domain.DateFormat),
		BookingTime:  req.StartTime.String(),
		Status:       string(domain.StatusConfirmed),
		OccurredAtMS: now.UnixMilli(),
	}); err != nil {
		uc.logger.Warn("RescheduleBooking: failed to publish booking.rescheduled for id=%s: %v", booking.ID, err)
	}

	return &Response{
		ID:              booking.ID,
		BusinessID:      booking.BusinessID,
		ServiceID:       booking.ServiceID,
		ServiceName:     booking.ServiceName,
		BookingDate:     req.Date,
		StartTime:       req.StartTime,
		DurationMinutes: service.DurationMinutes,
		Status:          string(domain.StatusConfirmed),
		RescheduleCount: booking.RescheduleCount + 1,
		UpdatedAt:       now,
	}, nil
}
