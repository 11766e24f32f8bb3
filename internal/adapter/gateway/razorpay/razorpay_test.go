package razorpay

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopkart/fulfillment/internal/adapter/config"
	"github.com/shopkart/fulfillment/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig(baseURL string) *config.Razorpay {
	return &config.Razorpay{
		BaseURL:       baseURL,
		KeyID:         "rzp_test_key",
		KeySecret:     "checkout-secret",
		WebhookSecret: "webhook-secret",
		Currency:      "INR",
	}
}

func sign(message, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(message))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestClient_VerifySignature(t *testing.T) {
	client, err := NewClient(testConfig("https://api.razorpay.com"), zap.NewNop())
	require.NoError(t, err)

	orderID := "order_MkWd8Qz7cN"
	paymentID := "pay_NlXe9Ra8dO"
	signature := sign(orderID+"|"+paymentID, "checkout-secret")

	tests := []struct {
		name      string
		orderID   string
		paymentID string
		signature string
		expOK     bool
	}{
		{"Valid triple", orderID, paymentID, signature, true},
		{"Mutated signature", orderID, paymentID, "0" + signature[1:], false},
		{"Signature for other order", "order_other", paymentID, signature, false},
		{"Signature for other payment", orderID, "pay_other", signature, false},
		{"Empty signature", orderID, paymentID, "", false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ok := client.VerifySignature(test.orderID, test.paymentID, test.signature)
			assert.Equal(t, test.expOK, ok)
		})
	}
}

func TestClient_VerifyWebhookSignature(t *testing.T) {
	client, err := NewClient(testConfig("https://api.razorpay.com"), zap.NewNop())
	require.NoError(t, err)

	payload := []byte(`{"event":"payment.captured"}`)

	assert.True(t, client.VerifyWebhookSignature(payload, sign(string(payload), "webhook-secret")))

	// The checkout secret must never validate a webhook body.
	assert.False(t, client.VerifyWebhookSignature(payload, sign(string(payload), "checkout-secret")))
	assert.False(t, client.VerifyWebhookSignature([]byte(`{"event":"payment.failed"}`),
		sign(string(payload), "webhook-secret")))
}

func TestClient_CreateOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "rzp_test_key", user)
		assert.Equal(t, "checkout-secret", pass)

		var req createOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(2000), req.Amount)
		assert.Equal(t, "INR", req.Currency)
		assert.Equal(t, "1001-1700000000", req.Receipt)
		assert.Equal(t, "1001", req.Notes["order_number"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(createOrderResponse{
			ID:       "order_MkWd8Qz7cN",
			Amount:   req.Amount,
			Currency: req.Currency,
			Status:   "created",
		})
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL), zap.NewNop())
	require.NoError(t, err)

	order, err := client.CreateOrder(context.Background(), 2000, "INR", "1001-1700000000",
		map[string]string{"order_number": "1001"})
	require.NoError(t, err)

	assert.Equal(t, "order_MkWd8Qz7cN", order.ID)
	assert.Equal(t, int64(2000), order.Amount)
	assert.Equal(t, "created", order.Status)

	// Round trip: a signature minted with the same secret over the returned
	// order id must verify.
	signature := sign(order.ID+"|pay_NlXe9Ra8dO", "checkout-secret")
	assert.True(t, client.VerifySignature(order.ID, "pay_NlXe9Ra8dO", signature))
}

func TestClient_CreateOrder_Errors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		expSentinel error
	}{
		{"Rejected credentials", http.StatusUnauthorized, domain.ErrConfiguration},
		{"Gateway down", http.StatusServiceUnavailable, domain.ErrRemoteUnavailable},
		{"Gateway internal error", http.StatusInternalServerError, domain.ErrRemoteUnavailable},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(test.status)
			}))
			defer server.Close()

			client, err := NewClient(testConfig(server.URL), zap.NewNop())
			require.NoError(t, err)

			_, err = client.CreateOrder(context.Background(), 2000, "INR", "r-1", nil)
			assert.ErrorIs(t, err, test.expSentinel)
		})
	}
}

func TestNewClient_MissingCredentials(t *testing.T) {
	_, err := NewClient(&config.Razorpay{BaseURL: "https://api.razorpay.com"}, zap.NewNop())
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}
