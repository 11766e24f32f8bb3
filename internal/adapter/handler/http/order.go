package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopkart/fulfillment/internal/core/domain"
	"github.com/shopkart/fulfillment/internal/core/port"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.Service
}

func NewOrderHandler(service port.Service, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type placeOrderItem struct {
	ProductID uint64 `json:"product_id" binding:"required"`
	Quantity  int64  `json:"quantity" binding:"required,gt=0"`
}

type placeOrderRequest struct {
	Name    string           `json:"name" binding:"required"`
	Address string           `json:"address" binding:"required"`
	City    string           `json:"city" binding:"required"`
	State   string           `json:"state" binding:"required"`
	Country string           `json:"country" binding:"required"`
	Pin     string           `json:"pin" binding:"required"`
	Phone   string           `json:"phone" binding:"required"`
	Items   []placeOrderItem `json:"items" binding:"required,dive"`
}

type orderItemResp struct {
	ProductID uint64 `json:"product_id"`
	Quantity  int64  `json:"quantity"`
	Price     int64  `json:"price"`
}

type orderResp struct {
	Number      string          `json:"number"`
	Status      string          `json:"status"`
	TotalAmount int64           `json:"total_amount"`
	Waybill     string          `json:"waybill,omitempty"`
	Items       []orderItemResp `json:"items"`
	CreatedAt   time.Time       `json:"created_at"`
}

func newOrderResp(order *domain.Order) orderResp {
	items := make([]orderItemResp, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemResp{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	return orderResp{
		Number:      order.Number,
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount,
		Waybill:     order.Waybill,
		Items:       items,
		CreatedAt:   order.CreatedAt,
	}
}

func (oh *OrderHandler) PlaceOrder(ctx *gin.Context) {
	var req placeOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order := &domain.Order{
		Address: domain.Address{
			Name:    req.Name,
			Line:    req.Address,
			City:    req.City,
			State:   req.State,
			Country: req.Country,
			Pin:     req.Pin,
			Phone:   req.Phone,
		},
		Items: items,
	}

	newOrder, err := oh.service.PlaceOrder(ctx, order)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	resp := newOrderResp(newOrder)
	oh.handleSuccessWithStatus(ctx, resp, http.StatusCreated)
}

func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	order, err := oh.service.GetOrder(ctx, ctx.Param("number"))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	resp := newOrderResp(order)
	oh.handleSuccess(ctx, resp)
}

type checkoutResp struct {
	GatewayOrderID string `json:"razorpay_order_id"`
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency"`
}

func (oh *OrderHandler) Checkout(ctx *gin.Context) {
	gatewayOrder, err := oh.service.Checkout(ctx, ctx.Param("number"))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	resp := checkoutResp{
		GatewayOrderID: gatewayOrder.ID,
		Amount:         gatewayOrder.Amount,
		Currency:       gatewayOrder.Currency,
	}
	oh.handleSuccess(ctx, resp)
}

func (oh *OrderHandler) Refund(ctx *gin.Context) {
	order, err := oh.service.RefundOrder(ctx, ctx.Param("number"))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	resp := newOrderResp(order)
	oh.handleSuccess(ctx, resp)
}

type trackingResp struct {
	Waybill      string `json:"waybill"`
	Status       string `json:"status"`
	StatusType   string `json:"status_type,omitempty"`
	Location     string `json:"location,omitempty"`
	Destination  string `json:"destination,omitempty"`
	PromisedDate string `json:"promised_date,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

func (oh *OrderHandler) TrackOrder(ctx *gin.Context) {
	tracking, err := oh.service.TrackOrder(ctx, ctx.Param("number"))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	resp := trackingResp{
		Waybill:      tracking.Waybill,
		Status:       tracking.Status,
		StatusType:   tracking.StatusType,
		Location:     tracking.Location,
		Destination:  tracking.Destination,
		PromisedDate: tracking.PromisedDate,
		Instructions: tracking.Instructions,
	}
	oh.handleSuccess(ctx, resp)
}
