package confirm_payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boinvit/booking-service/internal/domain"
	"github.com/boinvit/booking-service/internal/infra/stream"
	"github.com/boinvit/booking-service/internal/integrations/paystack"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeTransactions struct {
	tx             *domain.PaymentTransaction
	completedWith  string
	statusSet      domain.TransactionStatus
	statusSetCalls int
}

func (f *fakeTransactions) GetByReference(_ context.Context, _ string) (*domain.PaymentTransaction, error) {
	return f.tx, nil
}

func (f *fakeTransactions) MarkCompleted(_ context.Context, _ string, gatewayReference string, _ time.Time) error {
	f.completedWith = gatewayReference
	return nil
}

func (f *fakeTransactions) UpdateStatus(_ context.Context, _ string, status domain.TransactionStatus) error {
	f.statusSet = status
	f.statusSetCalls++
	return nil
}

type fakeBookings struct {
	completedID string
	failedID    string
}

func (f *fakeBookings) MarkPaymentCompleted(_ context.Context, id, _ string) error {
	f.completedID = id
	return nil
}

func (f *fakeBookings) MarkPaymentFailed(_ context.Context, id string) error {
	f.failedID = id
	return nil
}

type fakeInvoices struct {
	paidBookingID string
}

func (f *fakeInvoices) MarkPaidByBooking(_ context.Context, bookingID string, _ time.Time) error {
	f.paidBookingID = bookingID
	return nil
}

type fakeGateway struct {
	data  *paystack.VerifyData
	calls int
}

func (f *fakeGateway) VerifyTransaction(_ context.Context, _ string) (*paystack.VerifyData, error) {
	f.calls++
	return f.data, nil
}

type fakeEvents struct {
	published []stream.PaymentEvent
}

func (f *fakeEvents) PublishPaymentEvent(_ context.Context, event stream.PaymentEvent) error {
	f.published = append(f.published, event)
	return nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func pendingTransaction() *domain.PaymentTransaction {
	return &domain.PaymentTransaction{
		ID:             "tx-1",
		Reference:      "BK-ref-1",
		BusinessID:     "biz-1",
		BookingID:      "booking-1",
		Amount:         1000,
		PlatformFee:    75,
		BusinessAmount: 925,
		Currency:       "KES",
		Status:         domain.TxPending,
	}
}

func newTestUseCase(txs *fakeTransactions, bookings *fakeBookings, invoices *fakeInvoices, gateway *fakeGateway, events *fakeEvents) *UseCase {
	return NewUseCase(txs, bookings, invoices, gateway, events, passthroughTxManager{}, nopLogger{})
}

func TestExecuteSuccessSettlesEverything(t *testing.T) {
	txs := &fakeTransactions{tx: pendingTransaction()}
	bookings := &fakeBookings{}
	invoices := &fakeInvoices{}
	gateway := &fakeGateway{data: &paystack.VerifyData{
		ID:        421,
		Status:    "success",
		Reference: "BK-ref-1",
		Amount:    100000,
		Currency:  "KES",
		PaidAt:    "2026-08-29T10:15:00Z",
	}}
	events := &fakeEvents{}

	resp, err := newTestUseCase(txs, bookings, invoices, gateway, events).Execute(context.Background(), &Request{Reference: "BK-ref-1"})

	require.NoError(t, err)
	assert.Equal(t, string(domain.TxCompleted), resp.Status)
	assert.Equal(t, "421", txs.completedWith)
	assert.Equal(t, "booking-1", bookings.completedID)
	assert.Equal(t, "booking-1", invoices.paidBookingID)
	require.Len(t, events.published, 1)
	assert.Equal(t, "BK-ref-1", events.published[0].Reference)
	assert.Equal(t, 925.0, events.published[0].BusinessAmount)
}

func TestExecuteReplayOfFinalTransactionIsNoOp(t *testing.T) {
	tx := pendingTransaction()
	tx.Status = domain.TxCompleted

	txs := &fakeTransactions{tx: tx}
	gateway := &fakeGateway{}
	events := &fakeEvents{}

	resp, err := newTestUseCase(txs, &fakeBookings{}, &fakeInvoices{}, gateway, events).Execute(context.Background(), &Request{Reference: "BK-ref-1"})

	require.NoError(t, err)
	assert.Equal(t, string(domain.TxCompleted), resp.Status)
	assert.Zero(t, gateway.calls, "a final transaction must not be re-verified")
	assert.Empty(t, events.published)
}

func TestExecuteAmountMismatchRejected(t *testing.T) {
	txs := &fakeTransactions{tx: pendingTransaction()}
	gateway := &fakeGateway{data: &paystack.VerifyData{
		Status: "success",
		Amount: 50000, // gateway settled half the expected amount
	}}

	_, err := newTestUseCase(txs, &fakeBookings{}, &fakeInvoices{}, gateway, &fakeEvents{}).Execute(context.Background(), &Request{Reference: "BK-ref-1"})

	require.ErrorIs(t, err, ErrAmountMismatch)
	assert.Empty(t, txs.completedWith)
}

func TestExecuteFailedFlipsBookingPayment(t *testing.T) {
	txs := &fakeTransactions{tx: pendingTransaction()}
	bookings := &fakeBookings{}
	gateway := &fakeGateway{data: &paystack.VerifyData{Status: "failed"}}

	resp, err := newTestUseCase(txs, bookings, &fakeInvoices{}, gateway, &fakeEvents{}).Execute(context.Background(), &Request{Reference: "BK-ref-1"})

	require.NoError(t, err)
	assert.Equal(t, string(domain.TxFailed), resp.Status)
	assert.Equal(t, domain.TxFailed, txs.statusSet)
	assert.Equal(t, "booking-1", bookings.failedID)
}

func TestExecuteAbandonedLeavesBookingPending(t *testing.T) {
	txs := &fakeTransactions{tx: pendingTransaction()}
	bookings := &fakeBookings{}
	gateway := &fakeGateway{data: &paystack.VerifyData{Status: "abandoned"}}

	resp, err := newTestUseCase(txs, bookings, &fakeInvoices{}, gateway, &fakeEvents{}).Execute(context.Background(), &Request{Reference: "BK-ref-1"})

	require.NoError(t, err)
	assert.Equal(t, string(domain.TxAbandoned), resp.Status)
	assert.Empty(t, bookings.failedID, "abandoned checkout must not fail the booking")
}

func TestExecutePendingAtGatewayLeavesRecordUntouched(t *testing.T) {
	txs := &fakeTransactions{tx: pendingTransaction()}
	gateway := &fakeGateway{data: &paystack.VerifyData{Status: "ongoing"}}

	resp, err := newTestUseCase(txs, &fakeBookings{}, &fakeInvoices{}, gateway, &fakeEvents{}).Execute(context.Background(), &Request{Reference: "BK-ref-1"})

	require.NoError(t, err)
	assert.Equal(t, string(domain.TxPending), resp.Status)
	assert.Zero(t, txs.statusSetCalls)
}
