package http

import (
	"github.com/gin-gonic/gin"
	"github.com/shopkart/fulfillment/internal/core/port"
	"go.uber.org/zap"
)

type AdminHandler struct {
	Handler
	service port.Service
}

func NewAdminHandler(service port.Service, logger *zap.Logger) (*AdminHandler, error) {
	return &AdminHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

// UnshippedOrders is the reconciliation report: confirmed orders that still
// have no waybill. Non-empty output here means fulfillment needs attention.
func (ah *AdminHandler) UnshippedOrders(ctx *gin.Context) {
	list, err := ah.service.UnshippedOrders(ctx)
	if err != nil {
		ah.handleError(ctx, err)
		return
	}

	result := make([]orderResp, 0, len(list))
	for _, order := range list {
		result = append(result, newOrderResp(order))
	}

	ah.handleSuccess(ctx, result)
}
