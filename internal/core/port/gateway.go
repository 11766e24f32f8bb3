package port

import (
	"context"
)

// GatewayOrder is the payment gateway's order handle returned on creation.
type GatewayOrder struct {
	ID       string
	Amount   int64 // minor units
	Currency string
	Status   string
}

//go:generate mockgen -source=gateway.go -destination=mock/gateway.go -package=mock
type PaymentGateway interface {
	// CreateOrder registers a payment attempt with the gateway. Amount is in
	// minor units, receipt must be unique per attempt.
	CreateOrder(ctx context.Context, amount int64, currency string, receipt string,
		notes map[string]string) (*GatewayOrder, error)

	// VerifySignature recomputes the checkout HMAC over orderID|paymentID.
	// Pure local computation, no network call.
	VerifySignature(gatewayOrderID, gatewayPaymentID, signature string) bool

	// VerifyWebhookSignature checks an asynchronous event body against the
	// webhook secret.
	VerifyWebhookSignature(payload []byte, signature string) bool
}
