package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopkart/fulfillment/internal/core/domain"
	"github.com/shopkart/fulfillment/internal/core/port"
	"go.uber.org/zap"
)

// Service sequences the order fulfillment pipeline: checkout, payment
// verification, stock decrement and shipment scheduling. The confirmation
// writes happen in one repository transaction; the shipment itself is
// dispatched after commit by the shipment worker.
type Service struct {
	repo     port.Repository
	gateway  port.PaymentGateway
	courier  port.Courier
	currency string
	logger   *zap.Logger
}

func NewService(repo port.Repository, gateway port.PaymentGateway,
	courier port.Courier, currency string, logger *zap.Logger) (*Service, error) {
	return &Service{
		repo:     repo,
		gateway:  gateway,
		courier:  courier,
		currency: currency,
		logger:   logger,
	}, nil
}

func (s *Service) PlaceOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if len(order.Items) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	// Snapshot catalog prices into the items so later price changes never
	// touch a placed order.
	var total int64
	for i := range order.Items {
		product, err := s.repo.ReadProduct(ctx, order.Items[i].ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrDataNotFound) {
				return nil, domain.ErrDataNotFound
			}
			s.logger.Error("Read product", zap.Error(err))
			return nil, domain.ErrInternal
		}
		order.Items[i].Price = product.Price
		total += product.Price * order.Items[i].Quantity
	}

	order.TotalAmount = total
	order.Status = domain.OrderStatusPending
	order.CreatedAt = time.Now()
	if order.Number == "" {
		order.Number = fmt.Sprintf("ORD-%d", order.CreatedAt.UnixNano())
	}

	newOrder, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, domain.ErrConflictingData
		}
		s.logger.Error("Create order", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return newOrder, nil
}

func (s *Service) GetOrder(ctx context.Context, number string) (*domain.Order, error) {
	order, err := s.repo.ReadOrderByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		s.logger.Error("Read order", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return order, nil
}

// Checkout opens a payment attempt at the gateway and records it as a
// PENDING payment. The receipt carries a timestamp so every attempt gets a
// fresh idempotency token at the gateway.
func (s *Service) Checkout(ctx context.Context, orderNumber string) (*port.GatewayOrder, error) {
	order, err := s.GetOrder(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.OrderStatusPending {
		return nil, domain.ErrPaymentNotPending
	}

	receipt := fmt.Sprintf("%s-%d", order.Number, time.Now().Unix())
	notes := map[string]string{"order_number": order.Number}

	gatewayOrder, err := s.gateway.CreateOrder(ctx, order.TotalAmount, s.currency, receipt, notes)
	if err != nil {
		s.logger.Error("Gateway order create", zap.Error(err))
		return nil, err
	}

	payment := &domain.Payment{
		OrderID:       order.ID,
		TransactionID: gatewayOrder.ID,
		Status:        domain.PaymentStatusPending,
		Method:        domain.PaymentMethodRazorpay,
		CreatedAt:     time.Now(),
	}
	_, err = s.repo.CreatePayment(ctx, payment)
	if err != nil {
		s.logger.Error("Create payment", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return gatewayOrder, nil
}

// VerifyPayment runs the fulfillment sequence for one checkout attempt:
// locate the payment by (orderID, gatewayOrderID), verify the signature,
// then commit payment+order state, stock decrement and shipment task as one
// transaction. Absent records fail fast with no state mutated; anything
// unverifiable fails closed.
func (s *Service) VerifyPayment(ctx context.Context, req *port.VerificationRequest) (*domain.Order, error) {
	order, err := s.GetOrder(ctx, req.OrderNumber)
	if err != nil {
		return nil, err
	}

	payment, err := s.repo.ReadPayment(ctx, order.ID, req.GatewayOrderID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrPaymentNotFound
		}
		s.logger.Error("Read payment", zap.Error(err))
		return nil, domain.ErrInternal
	}

	// Re-verifying a completed payment is a no-op: stock stays decremented
	// once, the shipment task stays enqueued once.
	if payment.Status == domain.PaymentStatusCompleted {
		return order, nil
	}
	if payment.Status != domain.PaymentStatusPending {
		return nil, domain.ErrPaymentNotPending
	}

	verified := false
	if req.Method == domain.PaymentMethodRazorpay &&
		req.GatewayPaymentID != "" && req.Signature != "" {
		verified = s.gateway.VerifySignature(req.GatewayOrderID, req.GatewayPaymentID, req.Signature)
	}

	if !verified {
		// Fail closed: unverified and unsupported methods both land here.
		// Only a PENDING order is failed; a stale attempt against an order
		// another attempt already confirmed must not touch its state.
		if order.Status == domain.OrderStatusPending {
			if err := s.repo.FailOrderPayment(ctx, order.ID, payment.ID); err != nil {
				s.logger.Error("Fail payment", zap.Error(err))
				return nil, domain.ErrInternal
			}
		}
		if req.Method != domain.PaymentMethodRazorpay {
			return nil, domain.ErrUnsupportedPayMethod
		}
		return nil, domain.ErrSignatureMismatch
	}

	gatewayResponse, err := json.Marshal(map[string]string{
		"razorpay_order_id":   req.GatewayOrderID,
		"razorpay_payment_id": req.GatewayPaymentID,
		"razorpay_signature":  req.Signature,
	})
	if err != nil {
		return nil, domain.ErrInternal
	}

	err = s.repo.ConfirmOrderPayment(ctx, order.ID, payment.ID, req.GatewayPaymentID, gatewayResponse)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInsufficientStock):
			if failErr := s.repo.FailOrderPayment(ctx, order.ID, payment.ID); failErr != nil {
				s.logger.Error("Fail payment after stock shortage", zap.Error(failErr))
			}
			return nil, domain.ErrInsufficientStock
		case errors.Is(err, domain.ErrPaymentNotPending):
			// A concurrent verification won the race; succeed if it completed.
			current, readErr := s.repo.ReadPayment(ctx, order.ID, req.GatewayOrderID)
			if readErr == nil && current.Status == domain.PaymentStatusCompleted {
				return s.GetOrder(ctx, req.OrderNumber)
			}
			return nil, domain.ErrPaymentNotPending
		default:
			s.logger.Error("Confirm payment", zap.Error(err))
			return nil, domain.ErrInternal
		}
	}

	s.logger.Info("Payment verified, order confirmed",
		zap.String("order", order.Number),
		zap.String("gateway_order", req.GatewayOrderID))

	return s.GetOrder(ctx, req.OrderNumber)
}

type webhookEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID      string            `json:"id"`
				OrderID string            `json:"order_id"`
				Notes   map[string]string `json:"notes"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// HandleWebhookEvent completes payments confirmed asynchronously by the
// gateway. Events other than payment.captured are acknowledged and ignored.
func (s *Service) HandleWebhookEvent(ctx context.Context, payload []byte, signature string) error {
	if !s.gateway.VerifyWebhookSignature(payload, signature) {
		return domain.ErrSignatureMismatch
	}

	var event webhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return domain.ErrBadRequest
	}

	if event.Event != "payment.captured" {
		s.logger.Debug("Ignoring webhook event", zap.String("event", event.Event))
		return nil
	}

	entity := event.Payload.Payment.Entity
	orderNumber := entity.Notes["order_number"]
	if orderNumber == "" || entity.OrderID == "" {
		return domain.ErrBadRequest
	}

	order, err := s.GetOrder(ctx, orderNumber)
	if err != nil {
		return err
	}

	payment, err := s.repo.ReadPayment(ctx, order.ID, entity.OrderID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return domain.ErrPaymentNotFound
		}
		s.logger.Error("Read payment", zap.Error(err))
		return domain.ErrInternal
	}

	// Webhook may arrive after the synchronous verification already
	// completed the payment.
	if payment.Status == domain.PaymentStatusCompleted {
		return nil
	}
	if payment.Status != domain.PaymentStatusPending {
		return domain.ErrPaymentNotPending
	}

	err = s.repo.ConfirmOrderPayment(ctx, order.ID, payment.ID, entity.ID, payload)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentNotPending) {
			return nil
		}
		if errors.Is(err, domain.ErrInsufficientStock) {
			if failErr := s.repo.FailOrderPayment(ctx, order.ID, payment.ID); failErr != nil {
				s.logger.Error("Fail payment after stock shortage", zap.Error(failErr))
			}
			return domain.ErrInsufficientStock
		}
		s.logger.Error("Confirm payment from webhook", zap.Error(err))
		return domain.ErrInternal
	}

	s.logger.Info("Payment captured via webhook",
		zap.String("order", order.Number),
		zap.String("gateway_payment", entity.ID))

	return nil
}

// RefundOrder moves a confirmed order to REFUNDED and cancels its shipment
// at the courier. The cancellation is best-effort: the refund stands even if
// the courier call fails.
func (s *Service) RefundOrder(ctx context.Context, orderNumber string) (*domain.Order, error) {
	order, err := s.GetOrder(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.OrderStatusConfirmed {
		return nil, domain.ErrPaymentNotCompleted
	}

	payment, err := s.repo.ReadCompletedPayment(ctx, order.ID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrPaymentNotCompleted
		}
		s.logger.Error("Read completed payment", zap.Error(err))
		return nil, domain.ErrInternal
	}

	err = s.repo.RefundOrderPayment(ctx, order.ID, payment.ID)
	if err != nil {
		s.logger.Error("Refund payment", zap.Error(err))
		return nil, domain.ErrInternal
	}

	if order.Waybill != "" {
		if err := s.courier.CancelShipment(ctx, order.Waybill, "order refunded"); err != nil {
			s.logger.Error("Cancel shipment on refund",
				zap.String("order", order.Number),
				zap.String("waybill", order.Waybill),
				zap.Error(err))
		}
	}

	return s.GetOrder(ctx, orderNumber)
}

func (s *Service) TrackOrder(ctx context.Context, orderNumber string) (*domain.TrackingStatus, error) {
	order, err := s.GetOrder(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	if order.Waybill == "" {
		return nil, domain.ErrOrderNotShipped
	}

	tracking, err := s.courier.TrackShipment(ctx, order.Waybill)
	if err != nil {
		if errors.Is(err, domain.ErrShipmentNotFound) {
			return nil, domain.ErrShipmentNotFound
		}
		s.logger.Error("Track shipment", zap.Error(err))
		return nil, err
	}
	return tracking, nil
}

// UnshippedOrders reports confirmed orders with no dispatched shipment so
// fulfillment gaps never stay silent.
func (s *Service) UnshippedOrders(ctx context.Context) ([]*domain.Order, error) {
	list, err := s.repo.ListUnshippedOrders(ctx)
	if err != nil {
		s.logger.Error("List unshipped orders", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return list, nil
}
