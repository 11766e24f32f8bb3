package shipment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopkart/fulfillment/internal/core/domain"
	"github.com/shopkart/fulfillment/internal/core/port"
	"go.uber.org/zap"
)

const (
	defaultPollInterval = 10 * time.Second
	defaultBatchSize    = 100
	maxRetries          = 8
	backoffBase         = 30 * time.Second
)

// Worker drains the shipment outbox. Tasks are written in the same
// transaction that confirms a payment, so every confirmed order gets its
// shipment created at least once even across courier outages.
type Worker struct {
	repo         port.Repository
	courier      port.Courier
	logger       *zap.Logger
	pollInterval time.Duration
	batchSize    int
	stopCh       chan struct{}
}

func NewWorker(repo port.Repository, courier port.Courier, logger *zap.Logger) *Worker {
	return &Worker{
		repo:         repo,
		courier:      courier,
		logger:       logger,
		pollInterval: defaultPollInterval,
		batchSize:    defaultBatchSize,
		stopCh:       make(chan struct{}),
	}
}

// Start polls until the context is canceled or Stop is called.
func (w *Worker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("Shipment worker started",
		zap.Duration("poll_interval", w.pollInterval),
		zap.Int("batch_size", w.batchSize))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Shipment worker shutting down")
			return
		case <-w.stopCh:
			w.logger.Info("Shipment worker stopped")
			return
		case <-ticker.C:
			w.ProcessTasks(ctx)
		}
	}
}

func (w *Worker) Stop() {
	close(w.stopCh)
}

// ProcessTasks handles one batch of due tasks. A task failure never touches
// the order or payment state: the order stays CONFIRMED and the task is
// rescheduled or parked.
func (w *Worker) ProcessTasks(ctx context.Context) {
	tasks, err := w.repo.ListPendingShipmentTasks(ctx, w.batchSize)
	if err != nil {
		w.logger.Error("List pending shipment tasks", zap.Error(err))
		return
	}

	if len(tasks) == 0 {
		return
	}

	w.logger.Info("Processing shipment tasks", zap.Int("count", len(tasks)))

	for _, task := range tasks {
		w.processTask(ctx, task)
	}
}

func (w *Worker) processTask(ctx context.Context, task *domain.ShipmentTask) {
	order, err := w.repo.ReadOrder(ctx, task.OrderID)
	if err != nil {
		w.logger.Error("Read order for shipment task",
			zap.Uint64("task_id", task.ID), zap.Error(err))
		w.reschedule(ctx, task, err)
		return
	}

	req, err := w.buildRequest(ctx, order)
	if err != nil {
		w.logger.Error("Build shipment request",
			zap.String("order", order.Number), zap.Error(err))
		w.reschedule(ctx, task, err)
		return
	}

	result, err := w.courier.CreateShipment(ctx, req)
	if err != nil {
		if errors.Is(err, domain.ErrConfiguration) {
			// Not retryable: operators must fix credentials or the pickup
			// address before any shipment can succeed.
			w.logger.Error("Shipment task parked on configuration error",
				zap.Uint64("task_id", task.ID),
				zap.String("order", order.Number),
				zap.Error(err))
			w.park(ctx, task, err)
			return
		}
		w.logger.Warn("Shipment create failed, will retry",
			zap.Uint64("task_id", task.ID),
			zap.String("order", order.Number),
			zap.Int("retry_count", task.RetryCount+1),
			zap.Error(err))
		w.reschedule(ctx, task, err)
		return
	}

	if !result.Serviceable {
		w.logger.Error("Destination not serviceable, shipment task parked",
			zap.Uint64("task_id", task.ID),
			zap.String("order", order.Number),
			zap.String("pin", order.Address.Pin))
		w.park(ctx, task, fmt.Errorf("pin %s not serviceable", order.Address.Pin))
		return
	}

	err = w.repo.MarkShipmentDispatched(ctx, task.ID, result.Waybill)
	if err != nil {
		w.logger.Error("Mark shipment dispatched",
			zap.Uint64("task_id", task.ID), zap.Error(err))
		return
	}

	w.logger.Info("Shipment created",
		zap.String("order", order.Number),
		zap.String("waybill", result.Waybill),
		zap.String("courier_status", result.RawStatus))
}

func (w *Worker) buildRequest(ctx context.Context, order *domain.Order) (*domain.ShipmentRequest, error) {
	descs := make([]string, 0, len(order.Items))
	var weight int64
	for _, item := range order.Items {
		product, err := w.repo.ReadProduct(ctx, item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %d: %w", item.ProductID, err)
		}
		descs = append(descs, fmt.Sprintf("%s x%d", product.Name, item.Quantity))
		weight += product.WeightGrams * item.Quantity
	}

	return &domain.ShipmentRequest{
		OrderNumber:  order.Number,
		Destination:  order.Address,
		ProductsDesc: strings.Join(descs, ", "),
		WeightGrams:  weight,
		PaymentMode:  domain.PaymentModePrepaid,
	}, nil
}

func (w *Worker) reschedule(ctx context.Context, task *domain.ShipmentTask, cause error) {
	newRetryCount := task.RetryCount + 1
	if newRetryCount > maxRetries {
		w.logger.Error("Shipment task exhausted retries",
			zap.Uint64("task_id", task.ID),
			zap.Int("retry_count", task.RetryCount))
		w.park(ctx, task, cause)
		return
	}

	backoff := time.Duration(math.Pow(2, float64(newRetryCount))) * backoffBase
	nextRetryAt := time.Now().Add(backoff)

	err := w.repo.RescheduleShipmentTask(ctx, task.ID, newRetryCount, cause.Error(), nextRetryAt)
	if err != nil {
		w.logger.Error("Reschedule shipment task",
			zap.Uint64("task_id", task.ID), zap.Error(err))
	}
}

func (w *Worker) park(ctx context.Context, task *domain.ShipmentTask, cause error) {
	if err := w.repo.MarkShipmentTaskFailed(ctx, task.ID, cause.Error()); err != nil {
		w.logger.Error("Mark shipment task failed",
			zap.Uint64("task_id", task.ID), zap.Error(err))
	}
}
