package razorpay

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopkart/fulfillment/internal/adapter/config"
	"github.com/shopkart/fulfillment/internal/core/domain"
	"github.com/shopkart/fulfillment/internal/core/port"
	"go.uber.org/zap"
)

const requestTimeout = 30 * time.Second

// Client talks to the Razorpay Orders API and owns signature verification.
type Client struct {
	logger        *zap.Logger
	baseURL       string
	keyID         string
	keySecret     string
	webhookSecret string
	httpClient    *http.Client
}

func NewClient(cfg *config.Razorpay, log *zap.Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrConfiguration, err)
	}

	return &Client{
		logger:        log,
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		keyID:         cfg.KeyID,
		keySecret:     cfg.KeySecret,
		webhookSecret: cfg.WebhookSecret,
		httpClient:    &http.Client{Timeout: requestTimeout},
	}, nil
}

type createOrderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

type createOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

// CreateOrder registers a payment attempt with the gateway. Amount must
// already be in minor units; receipt must be unique per attempt so gateway
// retries stay idempotent.
func (c *Client) CreateOrder(ctx context.Context, amount int64, currency string, receipt string,
	notes map[string]string) (*port.GatewayOrder, error) {
	body, err := json.Marshal(createOrderRequest{
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
		Notes:    notes,
	})
	if err != nil {
		return nil, fmt.Errorf("error encoding order request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("error building order request: %w", err)
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("Fire gateway order create",
		zap.String("receipt", receipt), zap.Int64("amount", amount))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: gateway order create: %w", domain.ErrRemoteUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, fmt.Errorf("%w: gateway rejected credentials", domain.ErrConfiguration)
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("%w: gateway status %d", domain.ErrRemoteUnavailable, resp.StatusCode)
	default:
		return nil, fmt.Errorf("bad gateway response %d for receipt %s", resp.StatusCode, receipt)
	}

	var result createOrderResponse
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		return nil, fmt.Errorf("error on response decode: %w", err)
	}

	return &port.GatewayOrder{
		ID:       result.ID,
		Amount:   result.Amount,
		Currency: result.Currency,
		Status:   result.Status,
	}, nil
}

// VerifySignature recomputes the checkout HMAC over orderID|paymentID with
// the key secret. Pure local computation; a mismatch returns false, never an
// error.
func (c *Client) VerifySignature(gatewayOrderID, gatewayPaymentID, signature string) bool {
	return verifyHMAC([]byte(gatewayOrderID+"|"+gatewayPaymentID), signature, c.keySecret)
}

// VerifyWebhookSignature checks an asynchronous event body against the
// webhook secret, which is separate from the key secret.
func (c *Client) VerifyWebhookSignature(payload []byte, signature string) bool {
	return verifyHMAC(payload, signature, c.webhookSecret)
}

func verifyHMAC(message []byte, signature string, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(message)
	expected := hex.EncodeToString(mac.Sum(nil))

	// Constant-time compare to keep signature checks timing-safe.
	return hmac.Equal([]byte(expected), []byte(signature))
}
