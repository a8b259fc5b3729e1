package paystack

// InitializeRequest starts a checkout session at the gateway. Amount is in
// minor units (kobo for NGN, cents for KES).
type InitializeRequest struct {
	Email       string   `json:"email"`
	Amount      int64    `json:"amount"`
	Currency    string   `json:"currency"`
	Reference   string   `json:"reference"`
	CallbackURL string   `json:"callback_url,omitempty"`
	Channels    []string `json:"channels,omitempty"`

	// SubaccountCode routes the business share at the gateway. Bearer
	// "subaccount" makes the subaccount carry the transaction fee.
	SubaccountCode string `json:"subaccount,omitempty"`
	Bearer         string `json:"bearer,omitempty"`
}

// InitializeData is the useful part of a successful initialize response
type InitializeData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// VerifyData is the settled state of a transaction at the gateway
type VerifyData struct {
	ID        int64  `json:"id"`
	Status    string `json:"status"` // success | failed | abandoned
	Reference string `json:"reference"`
	Amount    int64  `json:"amount"` // minor units
	Currency  string `json:"currency"`
	Channel   string `json:"channel"`
	PaidAt    string `json:"paid_at"` // RFC3339, empty until settled
	GatewayID string `json:"-"`
}

// Bank is one entry of the gateway's supported bank list
type Bank struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	Currency string `json:"currency"`
	Type     string `json:"type"`
}

// WebhookEvent is the envelope the gateway posts to the webhook endpoint
type WebhookEvent struct {
	Event string     `json:"event"` // e.g. charge.success
	Data  VerifyData `json:"data"`
}

// envelope is the gateway's standard response wrapper
type envelope struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

type initializeEnvelope struct {
	envelope
	Data InitializeData `json:"data"`
}

type verifyEnvelope struct {
	envelope
	Data VerifyData `json:"data"`
}

type banksEnvelope struct {
	envelope
	Data []Bank `json:"data"`
}
