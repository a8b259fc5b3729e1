package paystack

import "errors"

var (
	// ErrTransactionNotFound is returned when the gateway has no record of
	// the given reference
	ErrTransactionNotFound = errors.New("paystack client: transaction not found")

	// ErrInternal is returned on client-side failures (request build, transport)
	ErrInternal = errors.New("paystack client: internal error")

	// ErrInvalidResponse is returned when the gateway answers with an
	// unexpected status or an unparsable body
	ErrInvalidResponse = errors.New("paystack client: invalid response")

	// ErrGatewayDeclined is returned when the gateway accepted the request
	// but refused the operation
	ErrGatewayDeclined = errors.New("paystack client: gateway declined request")
)
