package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/boinvit/booking-service/internal/domain"
	businessRepo "github.com/boinvit/booking-service/internal/infra/storage/business"
	"github.com/boinvit/booking-service/internal/infra/stream"
	"github.com/boinvit/booking-service/pkg/types"
)

// UseCase creates a booking from the public booking form
type UseCase struct {
	bookingRepo  BookingRepository
	businesses   BusinessProvider
	clientRepo   ClientRepository
	events       EventPublisher
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the usecase
func NewUseCase(
	bookingRepo BookingRepository,
	businesses BusinessProvider,
	clientRepo ClientRepository,
	events EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		businesses:   businesses,
		clientRepo:   clientRepo,
		events:       events,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute creates the booking. Slot availability is checked and the row
// inserted inside one serializable transaction so two clients cannot take
// the same slot.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: business=%s, service=%s, date=%s, time=%s, email=%s",
		req.BusinessID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime, req.ClientEmail)

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Date must not be in the past; on the current day the start time
	// must still be ahead
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}
	if isSameDay(req.Date, now) && req.StartTime.IsBefore(types.NewTimeString(now)) {
		uc.logger.Warn("CreateBooking: slot %s has already passed", req.StartTime)
		return nil, ErrTooLateToBook
	}

	// 3. Resolve the business
	business, err := uc.businesses.GetByID(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Warn("CreateBooking: business id=%s not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("CreateBooking: failed to get business id=%s: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	// 4. Resolve the service for price and duration denormalization
	service, err := uc.businesses.GetService(ctx, req.BusinessID, req.ServiceID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 5. The business must be open and the slot must sit on the grid
	hours, open := business.Hours.ForDate(req.Date)
	if !open {
		uc.logger.Warn("CreateBooking: business id=%s closed on %s", req.BusinessID, req.Date.Format(domain.DateFormat))
		return nil, ErrBusinessClosed
	}
	if err := validateSlotFits(hours, business.SlotInterval(), service.DurationMinutes, req.StartTime); err != nil {
		uc.logger.Warn("CreateBooking: slot validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 6. Availability check and insert in one serializable transaction
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Load the day's bookings with a row lock
		filter := domain.BusinessBookingsFilter{
			BusinessID: req.BusinessID,
			StartDate:  &req.Date,
			EndDate:    &req.Date,
		}
		bookings, err := uc.bookingRepo.GetByBusinessWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 6.2. Reject if the interval is already occupied
		taken, err := hasOverlap(req.StartTime, service.DurationMinutes, bookings)
		if err != nil {
			return fmt.Errorf("%w: failed to check overlap: %v", ErrInternal, err)
		}
		if taken {
			uc.logger.Warn("CreateBooking: slot %s on %s already taken", req.StartTime, req.Date.Format(domain.DateFormat))
			return ErrSlotNotAvailable
		}

		// 6.3. Upsert the client record, deduplicated by email per business
		client, err := uc.clientRepo.Upsert(txCtx, &domain.Client{
			ID:         uuid.NewString(),
			BusinessID: req.BusinessID,
			Name:       req.ClientName,
			Email:      req.ClientEmail,
			Phone:      req.ClientPhone,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to upsert client: %v", err)
			return fmt.Errorf("%w: failed to upsert client: %v", ErrInternal, err)
		}

		// 6.4. Insert the booking, pending until payment confirms it
		booking := &domain.Booking{
			ID:              uuid.NewString(),
			BusinessID:      req.BusinessID,
			ServiceID:       req.ServiceID,
			ClientID:        client.ID,
			ClientName:      req.ClientName,
			ClientEmail:     req.ClientEmail,
			ClientPhone:     req.ClientPhone,
			ServiceName:     service.Name,
			BookingDate:     req.Date,
			BookingTime:     req.StartTime,
			DurationMinutes: service.DurationMinutes,
			Status:          domain.StatusPending,
			PaymentStatus:   domain.PaymentPending,
			TotalAmount:     service.Price,
			Currency:        service.Currency,
			Notes:           req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)

	// 7. Event publishing is best effort, a broker outage must not fail the booking
	if err := uc.events.PublishBookingEvent(ctx, stream.TopicBookingCreated, stream.BookingEvent{
		BookingID:    result.ID,
		BusinessID:   result.BusinessID,
		ClientEmail:  result.ClientEmail,
		ServiceName:  result.ServiceName,
		BookingDate:  result.BookingDate.Format(domain.DateFormat),
		BookingTime:  result.BookingTime.String(),
		Status:       string(result.Status),
		OccurredAtMS: now.UnixMilli(),
	}); err != nil {
		uc.logger.Warn("CreateBooking: failed to publish booking.created for id=%s: %v", result.ID, err)
	}

	return toResponse(result), nil
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:              b.ID,
		BusinessID:      b.BusinessID,
		ServiceID:       b.ServiceID,
		ClientID:        b.ClientID,
		ClientName:      b.ClientName,
		ClientEmail:     b.ClientEmail,
		ClientPhone:     b.ClientPhone,
		ServiceName:     b.ServiceName,
		BookingDate:     b.BookingDate,
		StartTime:       b.BookingTime,
		DurationMinutes: b.DurationMinutes,
		Status:          string(b.Status),
		PaymentStatus:   string(b.PaymentStatus),
		TotalAmount:     b.TotalAmount,
		Currency:        b.Currency,
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
