package cancel_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/boinvit/booking-service/internal/domain"
	bookingRepo "github.com/boinvit/booking-service/internal/infra/storage/booking"
	"github.com/boinvit/booking-service/internal/infra/stream"
)

// Request cancels a booking
type Request struct {
	BookingID string
}

// Response is the booking's state after cancellation
type Response struct {
	ID          string
	Status      string
	CancelledAt time.Time
}

// UseCase cancels a booking. Pending bookings can always be cancelled,
// confirmed ones only outside the change window.
type UseCase struct {
	bookingRepo  BookingRepository
	events       EventPublisher
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the usecase
func NewUseCase(bookingRepo BookingRepository, events EventPublisher, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		events:       events,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute performs the cancellation
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: booking=%s", req.BookingID)

	if req.BookingID == "" {
		return nil, fmt.Errorf("%w: bookingId is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("CancelBooking: booking id=%s not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("CancelBooking: failed to get booking id=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if outcome := domain.CheckCancellable(booking, now); !outcome.IsEligible() {
		uc.logger.Warn("CancelBooking: booking id=%s refused: %s", req.BookingID, outcome)
		return nil, fmt.Errorf("%w: %s", ErrNotEligible, outcome.Message())
	}

	if err := uc.bookingRepo.UpdateStatus(ctx, booking.ID, domain.StatusCancelled); err != nil {
		uc.logger.Error("CancelBooking: failed to update status for id=%s: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
	}

	uc.logger.Info("CancelBooking: booking id=%s cancelled", booking.ID)

	if err := uc.events.PublishBookingEvent(ctx, stream.TopicBookingCancelled, stream.BookingEvent{
		BookingID:    booking.ID,
		BusinessID:   booking.BusinessID,
		ClientEmail:  booking.ClientEmail,
		ServiceName:  booking.ServiceName,
		BookingDate:  booking.BookingDate.Format(domain.DateFormat),
		BookingTime:  booking.BookingTime.String(),
		Status:       string(domain.StatusCancelled),
		OccurredAtMS: now.UnixMilli(),
	}); err != nil {
		uc.logger.Warn("CancelBooking: failed to publish booking.cancelled for id=%s: %v", booking.ID, err)
	}

	return &Response{
		ID:          booking.ID,
		Status:      string(domain.StatusCancelled),
		CancelledAt: now,
	}, nil
}
