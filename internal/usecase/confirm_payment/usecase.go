package confirm_payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/boinvit/booking-service/internal/domain"
	paymentRepo "github.com/boinvit/booking-service/internal/infra/storage/payment"
	"github.com/boinvit/booking-service/internal/infra/stream"
	"github.com/boinvit/booking-service/pkg/money"
)

// Request settles a payment reference reported by the gateway webhook.
// The reference is the only input; everything else comes from the gateway's
// verify endpoint so a forged webhook body cannot confirm anything.
type Request struct {
	Reference string
}

// Response is the settled transaction state
type Response struct {
	Reference string
	Status    string
	BookingID string
}

// UseCase settles a gateway payment. Idempotent by reference: a replayed
// webhook for an already-final transaction is a no-op success.
type UseCase struct {
	transactions TransactionRepository
	bookingRepo  BookingRepository
	invoiceRepo  InvoiceRepository
	gateway      GatewayClient
	events       EventPublisher
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the usecase
func NewUseCase(
	transactions TransactionRepository,
	bookingRepo BookingRepository,
	invoiceRepo InvoiceRepository,
	gateway GatewayClient,
	events EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		transactions: transactions,
		bookingRepo:  bookingRepo,
		invoiceRepo:  invoiceRepo,
		gateway:      gateway,
		events:       events,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute verifies the reference with the gateway and applies the outcome
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmPayment: reference=%s", req.Reference)

	if req.Reference == "" {
		return nil, fmt.Errorf("%w: reference is required", ErrInvalidInput)
	}

	// 1. The reference must be one we issued
	tx, err := uc.transactions.GetByReference(ctx, req.Reference)
	if err != nil {
		if errors.Is(err, paymentRepo.ErrTransactionNotFound) {
			uc.logger.Warn("ConfirmPayment: unknown reference=%s", req.Reference)
			return nil, ErrTransactionNotFound
		}
		uc.logger.Error("ConfirmPayment: failed to get transaction reference=%s: %v", req.Reference, err)
		return nil, fmt.Errorf("%w: failed to get transaction: %v", ErrInternal, err)
	}

	// 2. Replays of settled references are no-ops
	if tx.IsFinal() {
		uc.logger.Info("ConfirmPayment: reference=%s already final (%s), ignoring replay", req.Reference, tx.Status)
		return &Response{Reference: tx.Reference, Status: string(tx.Status), BookingID: tx.BookingID}, nil
	}

	// 3. Server-to-server verification is the source of truth
	verified, err := uc.gateway.VerifyTransaction(ctx, req.Reference)
	if err != nil {
		uc.logger.Error("ConfirmPayment: gateway verify failed for reference=%s: %v", req.Reference, err)
		return nil, fmt.Errorf("%w: gateway verify failed: %v", ErrInternal, err)
	}

	switch verified.Status {
	case "success":
		return uc.applySuccess(ctx, tx, verified.Amount, fmt.Sprintf("%d", verified.ID), verified.PaidAt)
	case "failed":
		return uc.applyFinal(ctx, tx, domain.TxFailed, true)
	case "abandoned":
		return uc.applyFinal(ctx, tx, domain.TxAbandoned, false)
	default:
		// still pending at the gateway; leave our record untouched
		uc.logger.Info("ConfirmPayment: reference=%s still %s at gateway", req.Reference, verified.Status)
		return &Response{Reference: tx.Reference, Status: string(tx.Status), BookingID: tx.BookingID}, nil
	}
}

// applySuccess settles the transaction, confirms the booking, and pays the
// invoice in a single serializable transaction so a verified payment can
// never confirm half the records
func (uc *UseCase) applySuccess(ctx context.Context, tx *domain.PaymentTransaction, settledMinor int64, gatewayReference, paidAtRaw string) (*Response, error) {
	if settledMinor != money.MinorUnits(tx.Amount) {
		uc.logger.Error("ConfirmPayment: amount mismatch for reference=%s: settled=%d expected=%d",
			tx.Reference, settledMinor, money.MinorUnits(tx.Amount))
		return nil, ErrAmountMismatch
	}

	paidAt := uc.timeProvider.Now()
	if parsed, err := time.Parse(time.RFC3339, paidAtRaw); err == nil {
		paidAt = parsed
	}

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := uc.transactions.MarkCompleted(txCtx, tx.Reference, gatewayReference, paidAt); err != nil {
			return fmt.Errorf("%w: failed to complete transaction: %v", ErrInternal, err)
		}
		if err := uc.bookingRepo.MarkPaymentCompleted(txCtx, tx.BookingID, tx.Reference); err != nil {
			return fmt.Errorf("%w: failed to confirm booking: %v", ErrInternal, err)
		}
		if err := uc.invoiceRepo.MarkPaidByBooking(txCtx, tx.BookingID, paidAt); err != nil {
			return fmt.Errorf("%w: failed to settle invoice: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("ConfirmPayment: settlement failed for reference=%s: %v", tx.Reference, err)
		return nil, err
	}

	uc.logger.Info("ConfirmPayment: reference=%s completed, booking id=%s confirmed", tx.Reference, tx.BookingID)

	if err := uc.events.PublishPaymentEvent(ctx, stream.PaymentEvent{
		Reference:      tx.Reference,
		BookingID:      tx.BookingID,
		BusinessID:     tx.BusinessID,
		Amount:         tx.Amount,
		PlatformFee:    tx.PlatformFee,
		BusinessAmount: tx.BusinessAmount,
		Currency:       tx.Currency,
		OccurredAtMS:   paidAt.UnixMilli(),
	}); err != nil {
		uc.logger.Warn("ConfirmPayment: failed to publish payment.completed for reference=%s: %v", tx.Reference, err)
	}

	return &Response{Reference: tx.Reference, Status: string(domain.TxCompleted), BookingID: tx.BookingID}, nil
}

// applyFinal records a failed or abandoned outcome. Failures also flip the
// booking's payment status; an abandoned checkout leaves the booking pending
// so the client can try again.
func (uc *UseCase) applyFinal(ctx context.Context, tx *domain.PaymentTransaction, status domain.TransactionStatus, failBooking bool) (*Response, error) {
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := uc.transactions.UpdateStatus(txCtx, tx.Reference, status); err != nil {
			return fmt.Errorf("%w: failed to update transaction: %v", ErrInternal, err)
		}
		if failBooking {
			if err := uc.bookingRepo.MarkPaymentFailed(txCtx, tx.BookingID); err != nil {
				return fmt.Errorf("%w: failed to mark booking payment failed: %v", ErrInternal, err)
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("ConfirmPayment: failed to record %s for reference=%s: %v", status, tx.Reference, err)
		return nil, err
	}

	uc.logger.Info("ConfirmPayment: reference=%s recorded as %s", tx.Reference, status)
	return &Response{Reference: tx.Reference, Status: string(status), BookingID: tx.BookingID}, nil
}
