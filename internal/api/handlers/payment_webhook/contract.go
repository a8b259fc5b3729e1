package payment_webhook

import (
	"context"

	confirmPayment "github.com/boinvit/booking-service/internal/usecase/confirm_payment"
)

type ConfirmPaymentUseCase interface {
	Execute(ctx context.Context, req *confirmPayment.Request) (*confirmPayment.Response, error)
}

// SignatureVerifier checks the gateway's HMAC signature over the raw body
type SignatureVerifier interface {
	VerifyWebhookSignature(body []byte, signature string) bool
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
