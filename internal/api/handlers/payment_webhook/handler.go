package payment_webhook

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/boinvit/booking-service/internal/api/handlers"
	"github.com/boinvit/booking-service/internal/integrations/paystack"
	confirmPayment "github.com/boinvit/booking-service/internal/usecase/confirm_payment"
)

const (
	signatureHeader = "x-paystack-signature"

	msgInvalidSignature = "invalid signature"
	msgInvalidPayload   = "invalid payload"

	// maxBodySize caps webhook bodies so a misbehaving sender cannot
	// exhaust memory
	maxBodySize = 1 << 20
)

// handled webhook event types; everything else is acknowledged and skipped
const (
	eventChargeSuccess = "charge.success"
	eventChargeFailed  = "charge.failed"
)

type Handler struct {
	useCase  ConfirmPaymentUseCase
	verifier SignatureVerifier
	logger   Logger
}

func NewHandler(useCase ConfirmPaymentUseCase, verifier SignatureVerifier, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		verifier: verifier,
		logger:   logger,
	}
}

// Handle POST /api/v1/payments/webhook
//
// The gateway is the only trusted source of payment confirmation. The raw
// body is verified against the HMAC signature header before any decoding,
// and the settlement itself re-verifies the transaction server-to-server.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		h.logger.Warn("POST /payments/webhook - Failed to read body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPayload)
		return
	}

	signature := r.Header.Get(signatureHeader)
	if signature == "" || !h.verifier.VerifyWebhookSignature(body, signature) {
		h.logger.Warn("POST /payments/webhook - Invalid signature")
		handlers.RespondUnauthorized(w, msgInvalidSignature)
		return
	}

	var event paystack.WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		h.logger.Warn("POST /payments/webhook - Invalid payload: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPayload)
		return
	}

	switch event.Event {
	case eventChargeSuccess, eventChargeFailed:
		// fall through to settlement
	default:
		h.logger.Info("POST /payments/webhook - Ignoring event: type=%s", event.Event)
		handlers.RespondJSON(w, http.StatusOK, nil)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &confirmPayment.Request{Reference: event.Data.Reference})
	if err != nil {
		switch {
		case errors.Is(err, confirmPayment.ErrTransactionNotFound):
			// Unknown reference: acknowledged so the gateway stops
			// retrying, but nothing is settled.
			h.logger.Warn("POST /payments/webhook - Unknown reference: reference=%s", event.Data.Reference)
			handlers.RespondJSON(w, http.StatusOK, nil)

		case errors.Is(err, confirmPayment.ErrAmountMismatch):
			h.logger.Error("POST /payments/webhook - Amount mismatch: reference=%s", event.Data.Reference)
			handlers.RespondJSON(w, http.StatusOK, nil)

		default:
			// Transient failure: non-2xx makes the gateway retry later.
			h.logger.Error("POST /payments/webhook - Failed to settle: reference=%s, error=%v",
				event.Data.Reference, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/webhook - Payment settled: reference=%s, status=%s, booking_id=%s",
		result.Reference, result.Status, result.BookingID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
