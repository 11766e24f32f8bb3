package http

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/shopkart/fulfillment/internal/core/domain"
	"github.com/shopkart/fulfillment/internal/core/port"
	"go.uber.org/zap"
)

const webhookSignatureHeader = "X-Razorpay-Signature"

type PaymentHandler struct {
	Handler
	service port.Service
}

func NewPaymentHandler(service port.Service, logger *zap.Logger) (*PaymentHandler, error) {
	return &PaymentHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type verifyPaymentRequest struct {
	OrderNumber      string `json:"order_number" binding:"required"`
	GatewayOrderID   string `json:"razorpay_order_id" binding:"required"`
	GatewayPaymentID string `json:"razorpay_payment_id"`
	Signature        string `json:"razorpay_signature"`
	Method           string `json:"method"`
}

func (ph *PaymentHandler) VerifyPayment(ctx *gin.Context) {
	var req verifyPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	method := req.Method
	if method == "" {
		method = domain.PaymentMethodRazorpay
	}

	order, err := ph.service.VerifyPayment(ctx, &port.VerificationRequest{
		OrderNumber:      req.OrderNumber,
		GatewayOrderID:   req.GatewayOrderID,
		GatewayPaymentID: req.GatewayPaymentID,
		Signature:        req.Signature,
		Method:           method,
	})
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	resp := newOrderResp(order)
	ph.handleSuccess(ctx, resp)
}

func (ph *PaymentHandler) Webhook(ctx *gin.Context) {
	payload, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}
	defer ctx.Request.Body.Close()

	signature := ctx.GetHeader(webhookSignatureHeader)
	if signature == "" {
		ph.handleError(ctx, domain.ErrSignatureMismatch)
		return
	}

	err = ph.service.HandleWebhookEvent(ctx, payload, signature)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, gin.H{"status": "ok"})
}
