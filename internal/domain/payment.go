package domain

import "time"

// TransactionStatus tracks a payment session through its lifecycle:
// initialized -> pending -> completed | failed | abandoned
type TransactionStatus string

const (
	TxInitialized TransactionStatus = "initialized"
	TxPending     TransactionStatus = "pending"
	TxCompleted   TransactionStatus = "completed"
	TxFailed      TransactionStatus = "failed"
	TxAbandoned   TransactionStatus = "abandoned"
)

// PaymentChannel is how the client pays at the gateway
type PaymentChannel string

const (
	ChannelCard        PaymentChannel = "card"
	ChannelMobileMoney PaymentChannel = "mobile_money"
)

// PaymentTransaction records a gateway charge for a booking. The reference
// is generated server-side before the gateway is called and is unique, which
// makes webhook confirmation idempotent: replays of the same reference are
// no-ops.
type PaymentTransaction struct {
	ID         string
	Reference  string
	BusinessID string
	BookingID  string

	Amount         float64 // gross charge amount
	PlatformFee    float64 // advisory when the gateway splits via subaccount
	BusinessAmount float64
	Currency       string

	Channel PaymentChannel
	Status  TransactionStatus

	// GatewayReference is the gateway's own id for the charge, recorded on
	// verification
	GatewayReference *string
	AuthorizationURL *string

	PaidAt    *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsFinal reports whether the transaction has reached a terminal state
func (t *PaymentTransaction) IsFinal() bool {
	return t.Status == TxCompleted || t.Status == TxFailed || t.Status == TxAbandoned
}

// BusinessPayout is a settlement of accumulated business amounts
type BusinessPayout struct {
	ID          string
	BusinessID  string
	Amount      float64
	Currency    string
	PeriodStart time.Time
	PeriodEnd   time.Time
	Status      string // pending | paid
	CreatedAt   time.Time
}
