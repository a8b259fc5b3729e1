package initiate_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/boinvit/booking-service/internal/domain"
	bookingRepo "github.com/boinvit/booking-service/internal/infra/storage/booking"
	"github.com/boinvit/booking-service/internal/integrations/paystack"
	"github.com/boinvit/booking-service/pkg/money"
)

// UseCase opens a gateway checkout session for a booking
type UseCase struct {
	bookingRepo       BookingRepository
	businesses        BusinessProvider
	transactions      TransactionRepository
	gateway           GatewayClient
	callbackURL       string
	defaultFeePercent float64
	timeProvider      TimeProvider
	logger            Logger
}

// NewUseCase creates the usecase
func NewUseCase(
	bookingRepo BookingRepository,
	businesses BusinessProvider,
	transactions TransactionRepository,
	gateway GatewayClient,
	callbackURL string,
	defaultFeePercent float64,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:       bookingRepo,
		businesses:        businesses,
		transactions:      transactions,
		gateway:           gateway,
		callbackURL:       callbackURL,
		defaultFeePercent: defaultFeePercent,
		timeProvider:      &RealTimeProvider{},
		logger:            logger,
	}
}

// Execute creates the payment transaction and returns the checkout URL.
// The split figures are computed here; when the business has a gateway
// subaccount the gateway performs the actual split and the local figures
// stay advisory.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("InitiatePayment: booking=%s, channel=%s", req.BookingID, req.Channel)

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("InitiatePayment: validation failed: %v", err)
		return nil, err
	}

	// 2. Load the booking and check it can be paid
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("InitiatePayment: booking id=%s not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("InitiatePayment: failed to get booking id=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if booking.IsPaid() || booking.IsCancelled() || booking.Status == domain.StatusNoShow {
		uc.logger.Warn("InitiatePayment: booking id=%s not payable: status=%s payment=%s",
			booking.ID, booking.Status, booking.PaymentStatus)
		return nil, ErrBookingNotPayable
	}
	if booking.TotalAmount <= 0 {
		uc.logger.Warn("InitiatePayment: booking id=%s has non-positive amount %.2f", booking.ID, booking.TotalAmount)
		return nil, ErrInvalidAmount
	}

	// 3. Business payment configuration drives the fee and the split mode
	business, err := uc.businesses.GetByID(ctx, booking.BusinessID)
	if err != nil {
		uc.logger.Error("InitiatePayment: failed to get business id=%s: %v", booking.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	split, err := money.ComputeSplit(booking.TotalAmount, business.FeePercent(uc.defaultFeePercent))
	if err != nil {
		uc.logger.Error("InitiatePayment: split failed for booking id=%s: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}

	// 4. Record the transaction before the gateway sees the reference
	reference := "BK-" + uuid.NewString()
	tx := &domain.PaymentTransaction{
		ID:             uuid.NewString(),
		Reference:      reference,
		BusinessID:     booking.BusinessID,
		BookingID:      booking.ID,
		Amount:         split.Gross,
		PlatformFee:    split.PlatformFee,
		BusinessAmount: split.BusinessAmount,
		Currency:       booking.Currency,
		Channel:        domain.PaymentChannel(req.Channel),
		Status:         domain.TxInitialized,
	}
	if _, err := uc.transactions.CreateTransaction(ctx, tx); err != nil {
		uc.logger.Error("InitiatePayment: failed to create transaction: %v", err)
		return nil, fmt.Errorf("%w: failed to create transaction: %v", ErrInternal, err)
	}

	// 5. Open the checkout session. Gateway amounts are in minor units; the
	// x100 rule assumes 2-decimal currencies.
	gatewayReq := paystack.InitializeRequest{
		Email:       booking.ClientEmail,
		Amount:      money.MinorUnits(split.Gross),
		Currency:    booking.Currency,
		Reference:   reference,
		CallbackURL: uc.callbackURL,
		Channels:    channelsFor(req.Channel),
	}
	if business.PaymentConfig.HasSubaccount() {
		gatewayReq.SubaccountCode = business.PaymentConfig.SubaccountCode
		gatewayReq.Bearer = "subaccount"
	}

	session, err := uc.gateway.InitializeTransaction(ctx, gatewayReq)
	if err != nil {
		uc.logger.Error("InitiatePayment: gateway initialize failed for reference=%s: %v", reference, err)
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	// 6. Store the checkout URL; the session is now pending
	if err := uc.transactions.SetAuthorization(ctx, reference, session.AuthorizationURL); err != nil {
		uc.logger.Error("InitiatePayment: failed to store authorization for reference=%s: %v", reference, err)
		return nil, fmt.Errorf("%w: failed to store authorization: %v", ErrInternal, err)
	}

	uc.logger.Info("InitiatePayment: session opened reference=%s amount=%s",
		reference, money.Format(split.Gross, booking.Currency))

	return &Response{
		Reference:        reference,
		AuthorizationURL: session.AuthorizationURL,
		Amount:           split.Gross,
		PlatformFee:      split.PlatformFee,
		BusinessAmount:   split.BusinessAmount,
		Currency:         booking.Currency,
		Status:           string(domain.TxPending),
	}, nil
}

func channelsFor(channel string) []string {
	switch channel {
	case string(domain.ChannelCard):
		return []string{"card"}
	case string(domain.ChannelMobileMoney):
		return []string{"mobile_money"}
	default:
		return []string{"card", "mobile_money"}
	}
}
