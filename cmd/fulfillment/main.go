package main

import (
	"context"
	"fmt"

	"github.com/shopkart/fulfillment/internal/adapter/config"
	"github.com/shopkart/fulfillment/internal/adapter/courier/delhivery"
	"github.com/shopkart/fulfillment/internal/adapter/gateway/razorpay"
	"github.com/shopkart/fulfillment/internal/adapter/handler/http"
	"github.com/shopkart/fulfillment/internal/adapter/logger"
	"github.com/shopkart/fulfillment/internal/adapter/storage"
	"github.com/shopkart/fulfillment/internal/adapter/storage/repository"
	"github.com/shopkart/fulfillment/internal/core/service"
	"github.com/shopkart/fulfillment/internal/worker/shipment"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("repository creating error", zap.Error(err))
		return
	}

	gateway, err := razorpay.NewClient(conf.Razorpay, log.Named("Razorpay"))
	if err != nil {
		log.Error("payment gateway creating error", zap.Error(err))
		return
	}

	courier, err := delhivery.NewClient(conf.Delhivery, log.Named("Delhivery"))
	if err != nil {
		log.Error("courier client creating error", zap.Error(err))
		return
	}

	svc, err := service.NewService(repo, gateway, courier, conf.Razorpay.Currency, log.Named("Service"))
	if err != nil {
		log.Error("fulfillment service creating error", zap.Error(err))
		return
	}

	worker := shipment.NewWorker(repo, courier, log.Named("ShipmentWorker"))
	go worker.Start(ctx)

	orderHandler, err := http.NewOrderHandler(svc, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	paymentHandler, err := http.NewPaymentHandler(svc, log.Named("Payment handler"))
	if err != nil {
		log.Error("payment handler creating error", zap.Error(err))
		return
	}
	adminHandler, err := http.NewAdminHandler(svc, log.Named("Admin handler"))
	if err != nil {
		log.Error("admin handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, orderHandler, paymentHandler, adminHandler, log.Named("Router"))
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
