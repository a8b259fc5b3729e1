package invoices

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/boinvit/booking-service/internal/domain"
	bookingRepo "github.com/boinvit/booking-service/internal/infra/storage/booking"
	invoiceRepo "github.com/boinvit/booking-service/internal/infra/storage/invoice"
	"github.com/boinvit/booking-service/internal/service/invoices/models"
	"github.com/boinvit/booking-service/pkg/money"
)

// Service manages invoices billed against bookings
type Service struct {
	invoiceRepo  InvoiceRepository
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates the invoices service
func NewService(invoiceRepo InvoiceRepository, bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		invoiceRepo:  invoiceRepo,
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Create bills a booking. Amount, currency, and client identity are copied
// from the booking so the invoice stays a faithful record even if the
// catalogue changes later.
func (s *Service) Create(ctx context.Context, req *models.CreateInvoiceRequest) (*models.InvoiceResponse, error) {
	s.logger.Info("CreateInvoice: business=%s, booking=%s", req.BusinessID, req.BookingID)

	if req.BusinessID == "" || req.BookingID == "" {
		return nil, fmt.Errorf("%w: businessId and bookingId are required", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("CreateInvoice: booking id=%s not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("CreateInvoice: failed to get booking id=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: Create - failed to get booking: %v", ErrInternal, err)
	}
	if booking.BusinessID != req.BusinessID {
		s.logger.Warn("CreateInvoice: booking id=%s belongs to business %s, not %s",
			req.BookingID, booking.BusinessID, req.BusinessID)
		return nil, ErrBookingMismatch
	}

	dueDays := req.DueDays
	if dueDays <= 0 {
		dueDays = domain.DefaultInvoiceDueDays
	}

	status := domain.InvoiceSent
	invoice := &domain.Invoice{
		ID:          uuid.NewString(),
		BusinessID:  req.BusinessID,
		BookingID:   booking.ID,
		ClientName:  booking.ClientName,
		ClientEmail: booking.ClientEmail,
		Amount:      booking.TotalAmount,
		Currency:    booking.Currency,
		Status:      status,
		DueDate:     s.timeProvider.Now().AddDate(0, 0, dueDays),
	}
	if booking.IsPaid() {
		invoice.Status = domain.InvoicePaid
	}

	created, err := s.invoiceRepo.Create(ctx, invoice)
	if err != nil {
		s.logger.Error("CreateInvoice: failed to create invoice for booking id=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateInvoice: created %s for booking id=%s", created.InvoiceNumber, req.BookingID)
	return models.FromDomainInvoice(created, money.Format(created.Amount, created.Currency)), nil
}

// GetByID fetches one invoice scoped to a business
func (s *Service) GetByID(ctx context.Context, businessID, invoiceID string) (*models.InvoiceResponse, error) {
	if businessID == "" || invoiceID == "" {
		return nil, fmt.Errorf("%w: businessId and invoiceId are required", ErrInvalidInput)
	}

	invoice, err := s.invoiceRepo.GetByID(ctx, businessID, invoiceID)
	if err != nil {
		if errors.Is(err, invoiceRepo.ErrInvoiceNotFound) {
			return nil, ErrInvoiceNotFound
		}
		s.logger.Error("GetInvoice: repository error for invoice id=%s: %v", invoiceID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainInvoice(invoice, money.Format(invoice.Amount, invoice.Currency)), nil
}

// List lists a business's invoices, optionally filtered by status
func (s *Service) List(ctx context.Context, req *models.ListInvoicesRequest) (*models.InvoiceListResponse, error) {
	if req.BusinessID == "" {
		return nil, fmt.Errorf("%w: businessId is required", ErrInvalidInput)
	}

	var status *domain.InvoiceStatus
	if req.Status != nil {
		if !domain.ValidInvoiceStatus(*req.Status) {
			return nil, ErrInvalidStatus
		}
		s := domain.InvoiceStatus(*req.Status)
		status = &s
	}

	invoices, err := s.invoiceRepo.ListByBusiness(ctx, req.BusinessID, status)
	if err != nil {
		s.logger.Error("ListInvoices: repository error for business=%s: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	out := make([]models.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, *models.FromDomainInvoice(inv, money.Format(inv.Amount, inv.Currency)))
	}
	return &models.InvoiceListResponse{Invoices: out, Total: len(out)}, nil
}

// UpdateStatus moves an invoice between draft, sent, and cancelled. The paid
// status is owned by payment confirmation and cannot be set by hand.
func (s *Service) UpdateStatus(ctx context.Context, businessID, invoiceID string, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateInvoiceStatus: business=%s, invoice=%s, status=%s", businessID, invoiceID, req.Status)

	if businessID == "" || invoiceID == "" {
		return fmt.Errorf("%w: businessId and invoiceId are required", ErrInvalidInput)
	}
	if !domain.ValidInvoiceStatus(req.Status) {
		return ErrInvalidStatus
	}
	if domain.InvoiceStatus(req.Status) == domain.InvoicePaid {
		return fmt.Errorf("%w: paid is set by payment confirmation only", ErrInvalidStatus)
	}

	if err := s.invoiceRepo.UpdateStatus(ctx, businessID, invoiceID, domain.InvoiceStatus(req.Status)); err != nil {
		if errors.Is(err, invoiceRepo.ErrInvoiceNotFound) {
			return ErrInvoiceNotFound
		}
		s.logger.Error("UpdateInvoiceStatus: repository error for invoice id=%s: %v", invoiceID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	return nil
}
