package models

import (
	"time"

	"github.com/boinvit/booking-service/internal/domain"
)

// TransactionResponse is the payment transaction wire representation
type TransactionResponse struct {
	Reference  string `json:"reference"`
	BusinessID string `json:"businessId"`
	BookingID  string `json:"bookingId"`

	Amount         float64 `json:"amount"`
	PlatformFee    float64 `json:"platformFee"`
	BusinessAmount float64 `json:"businessAmount"`
	Currency       string  `json:"currency"`

	Channel string `json:"channel,omitempty"`
	Status  string `json:"status"`

	PaidAt    *time.Time `json:"paidAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// TransactionListResponse is a business's transactions
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

// PayoutResponse is one settlement of a business's accumulated share
type PayoutResponse struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
	PeriodStart string    `json:"periodStart"` // "2026-08-01"
	PeriodEnd   string    `json:"periodEnd"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PayoutListResponse is a business's payout history
type PayoutListResponse struct {
	Payouts []PayoutResponse `json:"payouts"`
	Total   int              `json:"total"`
}

// BankResponse is one supported settlement bank
type BankResponse struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	Currency string `json:"currency"`
}

// BankListResponse is the gateway's supported bank list
type BankListResponse struct {
	Banks []BankResponse `json:"banks"`
}

// FromDomainTransaction converts a transaction into its wire form
func FromDomainTransaction(tx *domain.PaymentTransaction) TransactionResponse {
	return TransactionResponse{
		Reference:      tx.Reference,
		BusinessID:     tx.BusinessID,
		BookingID:      tx.BookingID,
		Amount:         tx.Amount,
		PlatformFee:    tx.PlatformFee,
		BusinessAmount: tx.BusinessAmount,
		Currency:       tx.Currency,
		Channel:        string(tx.Channel),
		Status:         string(tx.Status),
		PaidAt:         tx.PaidAt,
		CreatedAt:      tx.CreatedAt,
	}
}

// FromDomainPayout converts a payout into its wire form
func FromDomainPayout(p *domain.BusinessPayout) PayoutResponse {
	return PayoutResponse{
		ID:          p.ID,
		Amount:      p.Amount,
		Currency:    p.Currency,
		PeriodStart: p.PeriodStart.Format(domain.DateFormat),
		PeriodEnd:   p.PeriodEnd.Format(domain.DateFormat),
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
	}
}
