package paystack

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/boinvit/booking-service/pkg/loadcell"
)

// Client talks to the Paystack REST API
type Client struct {
	baseURL       string
	secretKey     string
	webhookSecret string
	httpClient    *http.Client
	log           Logger

	// banks changes rarely, so the list is fetched once and shared
	banks *loadcell.Cell[[]Bank]
}

// NewClient creates a gateway client
func NewClient(baseURL, secretKey, webhookSecret string, timeout time.Duration, log Logger) *Client {
	c := &Client{
		baseURL:       baseURL,
		secretKey:     secretKey,
		webhookSecret: webhookSecret,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
	c.banks = loadcell.New(c.fetchBanks, loadcell.WithRetries(2))
	return c
}

// InitializeTransaction opens a checkout session and returns the hosted
// payment page URL. Amount in the request is already in minor units.
func (c *Client) InitializeTransaction(ctx context.Context, reqBody InitializeRequest) (*InitializeData, error) {
	c.log.Info("Initializing gateway transaction reference=%s amount=%d %s", reqBody.Reference, reqBody.Amount, reqBody.Currency)

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transaction/initialize", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: %s", ErrGatewayDeclined, string(body))
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var env initializeEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if !env.Status {
		return nil, fmt.Errorf("%w: %s", ErrGatewayDeclined, env.Message)
	}

	return &env.Data, nil
}

// VerifyTransaction asks the gateway for the settled state of a reference.
// This is the authoritative check behind webhook handling: a webhook alone is
// never trusted to mark a payment completed.
func (c *Client) VerifyTransaction(ctx context.Context, reference string) (*VerifyData, error) {
	url := fmt.Sprintf("%s/transaction/verify/%s", c.baseURL, reference)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrTransactionNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var env verifyEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if !env.Status {
		return nil, fmt.Errorf("%w: %s", ErrGatewayDeclined, env.Message)
	}

	return &env.Data, nil
}

// ListBanks returns the gateway's supported banks for payout setup. The list
// is loaded once per process and shared across callers.
func (c *Client) ListBanks(ctx context.Context) ([]Bank, error) {
	return c.banks.Get(ctx)
}

func (c *Client) fetchBanks(ctx context.Context) ([]Bank, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/bank", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var env banksEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if !env.Status {
		return nil, fmt.Errorf("%w: %s", ErrGatewayDeclined, env.Message)
	}

	return env.Data, nil
}

// VerifyWebhookSignature checks the x-paystack-signature header against an
// HMAC-SHA512 of the raw body keyed with the webhook secret
func (c *Client) VerifyWebhookSignature(body []byte, signature string) bool {
	mac := hmac.New(sha512.New, []byte(c.webhookSecret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")
}
