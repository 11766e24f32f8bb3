package port

import (
	"context"

	"github.com/shopkart/fulfillment/internal/core/domain"
)

// VerificationRequest carries the identifiers the gateway hands back to the
// buyer after checkout.
type VerificationRequest struct {
	OrderNumber      string
	GatewayOrderID   string
	GatewayPaymentID string
	Signature        string
	Method           string
}

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock
type Service interface {
	PlaceOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetOrder(ctx context.Context, number string) (*domain.Order, error)

	Checkout(ctx context.Context, orderNumber string) (*GatewayOrder, error)
	VerifyPayment(ctx context.Context, req *VerificationRequest) (*domain.Order, error)
	HandleWebhookEvent(ctx context.Context, payload []byte, signature string) error

	RefundOrder(ctx context.Context, orderNumber string) (*domain.Order, error)
	TrackOrder(ctx context.Context, orderNumber string) (*domain.TrackingStatus, error)

	UnshippedOrders(ctx context.Context) ([]*domain.Order, error)
}
