package port

import (
	"context"
	"time"

	"github.com/shopkart/fulfillment/internal/core/domain"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// Catalog
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	ReadProduct(ctx context.Context, productID uint64) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)

	// Order
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, orderID uint64) (*domain.Order, error)
	ReadOrderByNumber(ctx context.Context, number string) (*domain.Order, error)
	ListUnshippedOrders(ctx context.Context) ([]*domain.Order, error)

	// Payment
	CreatePayment(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	ReadPayment(ctx context.Context, orderID uint64, transactionID string) (*domain.Payment, error)
	ReadCompletedPayment(ctx context.Context, orderID uint64) (*domain.Payment, error)

	// ConfirmOrderPayment runs the whole confirmation as one transaction:
	// payment COMPLETED, order CONFIRMED, conditional stock decrement for
	// every item, shipment task inserted into the outbox. Any failure,
	// including insufficient stock, rolls the whole unit back.
	ConfirmOrderPayment(ctx context.Context, orderID uint64, paymentID uint64,
		gatewayPaymentID string, gatewayResponse []byte) error

	// FailOrderPayment marks a PENDING payment and its PENDING order FAILED
	// in one transaction. Rows already moved to another status stay put.
	FailOrderPayment(ctx context.Context, orderID uint64, paymentID uint64) error

	// RefundOrderPayment marks a COMPLETED payment and its CONFIRMED order
	// REFUNDED in one transaction. Rows already moved stay put.
	RefundOrderPayment(ctx context.Context, orderID uint64, paymentID uint64) error

	// Shipment outbox
	ListPendingShipmentTasks(ctx context.Context, limit int) ([]*domain.ShipmentTask, error)
	MarkShipmentDispatched(ctx context.Context, taskID uint64, waybill string) error
	RescheduleShipmentTask(ctx context.Context, taskID uint64, retryCount int,
		lastError string, nextRetryAt time.Time) error
	MarkShipmentTaskFailed(ctx context.Context, taskID uint64, lastError string) error
}
