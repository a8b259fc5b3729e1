package initiate_payment

// Request starts a payment session for a booking
type Request struct {
	BookingID string
	Channel   string // "card" or "mobile_money"; empty lets the gateway offer both
}

// Response carries the checkout URL the client is redirected to
type Response struct {
	Reference        string
	AuthorizationURL string
	Amount           float64
	PlatformFee      float64
	BusinessAmount   float64
	Currency         string
	Status           string
}
