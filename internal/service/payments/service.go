package payments

import (
	"context"
	"fmt"

	"github.com/boinvit/booking-service/internal/domain"
	"github.com/boinvit/booking-service/internal/service/payments/models"
)

// Service reads payment transactions and payouts for the dashboard
type Service struct {
	transactions TransactionRepository
	gateway      GatewayClient
	logger       Logger
}

// NewService creates the payments service
func NewService(transactions TransactionRepository, gateway GatewayClient, logger Logger) *Service {
	return &Service{
		transactions: transactions,
		gateway:      gateway,
		logger:       logger,
	}
}

// ListTransactions lists a business's payment transactions, optionally
// filtered by status
func (s *Service) ListTransactions(ctx context.Context, businessID string, status *string) (*models.TransactionListResponse, error) {
	if businessID == "" {
		return nil, fmt.Errorf("%w: businessId is required", ErrInvalidInput)
	}

	var domainStatus *domain.TransactionStatus
	if status != nil {
		switch domain.TransactionStatus(*status) {
		case domain.TxInitialized, domain.TxPending, domain.TxCompleted, domain.TxFailed, domain.TxAbandoned:
			st := domain.TransactionStatus(*status)
			domainStatus = &st
		default:
			return nil, ErrInvalidStatus
		}
	}

	transactions, err := s.transactions.ListByBusiness(ctx, businessID, domainStatus)
	if err != nil {
		s.logger.Error("ListTransactions: repository error for business=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: ListTransactions - repository error: %v", ErrInternal, err)
	}

	out := make([]models.TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		out = append(out, models.FromDomainTransaction(tx))
	}
	return &models.TransactionListResponse{Transactions: out, Total: len(out)}, nil
}

// ListPayouts lists a business's settlement history
func (s *Service) ListPayouts(ctx context.Context, businessID string) (*models.PayoutListResponse, error) {
	if businessID == "" {
		return nil, fmt.Errorf("%w: businessId is required", ErrInvalidInput)
	}

	payouts, err := s.transactions.ListPayouts(ctx, businessID)
	if err != nil {
		s.logger.Error("ListPayouts: repository error for business=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: ListPayouts - repository error: %v", ErrInternal, err)
	}

	out := make([]models.PayoutResponse, 0, len(payouts))
	for _, p := range payouts {
		out = append(out, models.FromDomainPayout(p))
	}
	return &models.PayoutListResponse{Payouts: out, Total: len(out)}, nil
}

// ListBanks returns the gateway's supported banks for payout setup
func (s *Service) ListBanks(ctx context.Context) (*models.BankListResponse, error) {
	banks, err := s.gateway.ListBanks(ctx)
	if err != nil {
		s.logger.Error("ListBanks: gateway error: %v", err)
		return nil, fmt.Errorf("%w: ListBanks - gateway error: %v", ErrInternal, err)
	}

	out := make([]models.BankResponse, 0, len(banks))
	for _, b := range banks {
		out = append(out, models.BankResponse{Name: b.Name, Code: b.Code, Currency: b.Currency})
	}
	return &models.BankListResponse{Banks: out}, nil
}
