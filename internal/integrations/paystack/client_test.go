package paystack

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient(baseURL string) *Client {
	return NewClient(baseURL, "sk_test_secret", "whsec_test", 2*time.Second, nopLogger{})
}

func TestInitializeTransaction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transaction/initialize", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_secret", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":true,"message":"Authorization URL created","data":{
			"authorization_url":"https://checkout.paystack.com/abc123",
			"access_code":"abc123",
			"reference":"BK-ref-1"}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	data, err := client.InitializeTransaction(context.Background(), InitializeRequest{
		Email:     "client@example.com",
		Amount:    150000,
		Currency:  "KES",
		Reference: "BK-ref-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://checkout.paystack.com/abc123", data.AuthorizationURL)
	assert.Equal(t, "BK-ref-1", data.Reference)
}

func TestInitializeTransactionDeclined(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"status":false,"message":"Invalid amount"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.InitializeTransaction(context.Background(), InitializeRequest{})

	require.ErrorIs(t, err, ErrGatewayDeclined)
}

func TestVerifyTransaction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transaction/verify/BK-ref-1", r.URL.Path)

		w.Write([]byte(`{"status":true,"message":"Verification successful","data":{
			"id":421,
			"status":"success",
			"reference":"BK-ref-1",
			"amount":150000,
			"currency":"KES",
			"channel":"card",
			"paid_at":"2026-08-29T10:15:00Z"}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	data, err := client.VerifyTransaction(context.Background(), "BK-ref-1")

	require.NoError(t, err)
	assert.Equal(t, "success", data.Status)
	assert.EqualValues(t, 150000, data.Amount)
}

func TestVerifyTransactionNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status":false,"message":"Transaction reference not found"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.VerifyTransaction(context.Background(), "missing")

	require.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestListBanksFetchedOnce(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(`{"status":true,"message":"Banks retrieved","data":[
			{"name":"Test Bank","code":"001","currency":"KES","type":"kenya"}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	for i := 0; i < 3; i++ {
		banks, err := client.ListBanks(context.Background())
		require.NoError(t, err)
		require.Len(t, banks, 1)
		assert.Equal(t, "Test Bank", banks[0].Name)
	}

	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestVerifyWebhookSignature(t *testing.T) {
	client := newTestClient("http://unused")
	body := []byte(`{"event":"charge.success","data":{"reference":"BK-ref-1"}}`)

	mac := hmac.New(sha512.New, []byte("whsec_test"))
	mac.Write(body)
	valid := hex.EncodeToString(mac.Sum(nil))

	assert.True(t, client.VerifyWebhookSignature(body, valid))
	assert.False(t, client.VerifyWebhookSignature(body, "deadbeef"))
	assert.False(t, client.VerifyWebhookSignature([]byte("tampered"), valid))
}
