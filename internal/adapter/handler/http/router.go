package http

import (
	"github.com/gin-gonic/gin"
	"github.com/shopkart/fulfillment/internal/adapter/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	orderHandler *OrderHandler,
	paymentHandler *PaymentHandler,
	adminHandler *AdminHandler,
	logger *zap.Logger) (*Router, error) {

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		orders := api.Group("/orders")
		{
			orders.POST("", orderHandler.PlaceOrder)
			orders.GET("/:number", orderHandler.GetOrder)
			orders.POST("/:number/checkout", orderHandler.Checkout)
			orders.POST("/:number/refund", orderHandler.Refund)
			orders.GET("/:number/tracking", orderHandler.TrackOrder)
		}

		payments := api.Group("/payments")
		{
			payments.POST("/verify", paymentHandler.VerifyPayment)
			payments.POST("/webhook", paymentHandler.Webhook)
		}

		admin := api.Group("/admin")
		{
			admin.GET("/orders/unshipped", adminHandler.UnshippedOrders)
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
