package initiate_payment

import (
	"errors"
	"net/http"

	"github.com/boinvit/booking-service/internal/api/handlers"
	initiatePayment "github.com/boinvit/booking-service/internal/usecase/initiate_payment"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgBookingNotFound    = "booking not found"
	msgBookingNotPayable  = "booking is not payable"
	msgInvalidAmount      = "booking has no payable amount"
	msgGatewayUnavailable = "payment gateway is unavailable, try again later"
)

// InitiatePaymentRequest HTTP request model
type InitiatePaymentRequest struct {
	BookingID string `json:"bookingId"`
	Channel   string `json:"channel,omitempty"` // card | mobile_money
}

// InitiatePaymentResponse HTTP response model
type InitiatePaymentResponse struct {
	Reference        string  `json:"reference"`
	AuthorizationURL string  `json:"authorizationUrl"`
	Amount           float64 `json:"amount"`
	PlatformFee      float64 `json:"platformFee"`
	BusinessAmount   float64 `json:"businessAmount"`
	Currency         string  `json:"currency"`
	Status           string  `json:"status"`
}

type Handler struct {
	useCase InitiatePaymentUseCase
	logger  Logger
}

func NewHandler(useCase InitiatePaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/initiate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req InitiatePaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/initiate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &initiatePayment.Request{
		BookingID: req.BookingID,
		Channel:   req.Channel,
	})
	if err != nil {
		switch {
		case errors.Is(err, initiatePayment.ErrBookingNotFound):
			h.logger.Warn("POST /payments/initiate - Booking not found: booking_id=%s", req.BookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, initiatePayment.ErrBookingNotPayable):
			h.logger.Warn("POST /payments/initiate - Booking not payable: booking_id=%s", req.BookingID)
			handlers.RespondError(w, http.StatusConflict, msgBookingNotPayable)

		case errors.Is(err, initiatePayment.ErrInvalidAmount):
			h.logger.Warn("POST /payments/initiate - Invalid amount: booking_id=%s", req.BookingID)
			handlers.RespondBadRequest(w, msgInvalidAmount)

		case errors.Is(err, initiatePayment.ErrGatewayUnavailable):
			h.logger.Error("POST /payments/initiate - Gateway unavailable: booking_id=%s, error=%v",
				req.BookingID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgGatewayUnavailable)

		case errors.Is(err, initiatePayment.ErrInvalidInput):
			h.logger.Warn("POST /payments/initiate - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /payments/initiate - Failed to initiate payment: booking_id=%s, error=%v",
				req.BookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/initiate - Payment initiated: booking_id=%s, reference=%s, amount=%.2f",
		req.BookingID, result.Reference, result.Amount)
	handlers.RespondJSON(w, http.StatusOK, &InitiatePaymentResponse{
		Reference:        result.Reference,
		AuthorizationURL: result.AuthorizationURL,
		Amount:           result.Amount,
		PlatformFee:      result.PlatformFee,
		BusinessAmount:   result.BusinessAmount,
		Currency:         result.Currency,
		Status:           result.Status,
	})
}
