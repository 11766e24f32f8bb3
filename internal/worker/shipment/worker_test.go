package shipment

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopkart/fulfillment/internal/core/domain"
	"github.com/shopkart/fulfillment/internal/core/port/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type prepareMocks func(repo *mock.MockRepository, courier *mock.MockCourier)

func TestWorker_ProcessTasks(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	order := domain.Order{
		ID:     1001,
		Number: "1001",
		Status: domain.OrderStatusConfirmed,
		Address: domain.Address{
			Name:    "Asha Rao",
			Line:    "14 MG Road",
			City:    "Bengaluru",
			State:   "Karnataka",
			Country: "India",
			Pin:     "560001",
			Phone:   "9900000000",
		},
		Items: []domain.OrderItem{
			{ProductID: 5, Quantity: 3, Price: 500},
		},
	}
	product := domain.Product{ID: 5, Name: "Brass Lamp", Price: 500, Stock: 7, WeightGrams: 400}

	task := domain.ShipmentTask{
		ID:      9,
		OrderID: 1001,
		Status:  domain.ShipmentTaskPending,
	}
	exhaustedTask := task
	exhaustedTask.RetryCount = maxRetries

	tests := []struct {
		name string
		mock prepareMocks
	}{
		{
			name: "Dispatch good",
			mock: func(repo *mock.MockRepository, courier *mock.MockCourier) {
				repo.EXPECT().ListPendingShipmentTasks(gomock.Any(), defaultBatchSize).
					Return([]*domain.ShipmentTask{&task}, nil)
				repo.EXPECT().ReadOrder(gomock.Any(), uint64(1001)).Return(&order, nil)
				repo.EXPECT().ReadProduct(gomock.Any(), uint64(5)).Return(&product, nil)
				courier.EXPECT().CreateShipment(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req *domain.ShipmentRequest) (*domain.ShipmentResult, error) {
						assert.Equal(t, "1001", req.OrderNumber)
						assert.Equal(t, "560001", req.Destination.Pin)
						assert.Equal(t, "Brass Lamp x3", req.ProductsDesc)
						assert.Equal(t, int64(1200), req.WeightGrams)
						assert.Equal(t, domain.PaymentModePrepaid, req.PaymentMode)
						return &domain.ShipmentResult{
							Waybill:     "WB1234567890",
							Serviceable: true,
							RawStatus:   "Success",
						}, nil
					})
				repo.EXPECT().MarkShipmentDispatched(gomock.Any(), uint64(9), "WB1234567890").Return(nil)
			},
		},
		{
			name: "Transient courier failure reschedules with backoff",
			mock: func(repo *mock.MockRepository, courier *mock.MockCourier) {
				repo.EXPECT().ListPendingShipmentTasks(gomock.Any(), defaultBatchSize).
					Return([]*domain.ShipmentTask{&task}, nil)
				repo.EXPECT().ReadOrder(gomock.Any(), uint64(1001)).Return(&order, nil)
				repo.EXPECT().ReadProduct(gomock.Any(), uint64(5)).Return(&product, nil)
				courier.EXPECT().CreateShipment(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: courier status 503", domain.ErrRemoteUnavailable))
				repo.EXPECT().RescheduleShipmentTask(gomock.Any(), uint64(9), 1,
					gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ uint64, _ int, _ string, nextRetryAt time.Time) error {
						// First retry lands one backoff step out, never immediately.
						assert.True(t, nextRetryAt.After(time.Now().Add(backoffBase)))
						return nil
					})
			},
		},
		{
			name: "Configuration error parks the task",
			mock: func(repo *mock.MockRepository, courier *mock.MockCourier) {
				repo.EXPECT().ListPendingShipmentTasks(gomock.Any(), defaultBatchSize).
					Return([]*domain.ShipmentTask{&task}, nil)
				repo.EXPECT().ReadOrder(gomock.Any(), uint64(1001)).Return(&order, nil)
				repo.EXPECT().ReadProduct(gomock.Any(), uint64(5)).Return(&product, nil)
				courier.EXPECT().CreateShipment(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: pickup location not registered with courier",
						domain.ErrConfiguration))
				repo.EXPECT().MarkShipmentTaskFailed(gomock.Any(), uint64(9), gomock.Any()).Return(nil)
			},
		},
		{
			name: "Unserviceable destination parks the task",
			mock: func(repo *mock.MockRepository, courier *mock.MockCourier) {
				repo.EXPECT().ListPendingShipmentTasks(gomock.Any(), defaultBatchSize).
					Return([]*domain.ShipmentTask{&task}, nil)
				repo.EXPECT().ReadOrder(gomock.Any(), uint64(1001)).Return(&order, nil)
				repo.EXPECT().ReadProduct(gomock.Any(), uint64(5)).Return(&product, nil)
				courier.EXPECT().CreateShipment(gomock.Any(), gomock.Any()).
					Return(&domain.ShipmentResult{Serviceable: false, RawStatus: "Fail"}, nil)
				repo.EXPECT().MarkShipmentTaskFailed(gomock.Any(), uint64(9), gomock.Any()).Return(nil)
			},
		},
		{
			name: "Exhausted retries park instead of rescheduling",
			mock: func(repo *mock.MockRepository, courier *mock.MockCourier) {
				repo.EXPECT().ListPendingShipmentTasks(gomock.Any(), defaultBatchSize).
					Return([]*domain.ShipmentTask{&exhaustedTask}, nil)
				repo.EXPECT().ReadOrder(gomock.Any(), uint64(1001)).Return(&order, nil)
				repo.EXPECT().ReadProduct(gomock.Any(), uint64(5)).Return(&product, nil)
				courier.EXPECT().CreateShipment(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: courier status 503", domain.ErrRemoteUnavailable))
				repo.EXPECT().MarkShipmentTaskFailed(gomock.Any(), uint64(9), gomock.Any()).Return(nil)
			},
		},
		{
			name: "Empty batch is a no-op",
			mock: func(repo *mock.MockRepository, courier *mock.MockCourier) {
				repo.EXPECT().ListPendingShipmentTasks(gomock.Any(), defaultBatchSize).
					Return(nil, nil)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			courier := mock.NewMockCourier(mockCtrl)
			test.mock(repo, courier)

			// No order or payment expectations beyond the reads: a task
			// failure must never touch confirmed state.
			worker := NewWorker(repo, courier, zap.NewNop())
			worker.ProcessTasks(context.Background())
		})
	}
}

func TestWorker_StartStop(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	repo := mock.NewMockRepository(mockCtrl)
	courier := mock.NewMockCourier(mockCtrl)

	worker := NewWorker(repo, courier, zap.NewNop())
	worker.pollInterval = time.Hour // never ticks during the test

	done := make(chan struct{})
	go func() {
		worker.Start(context.Background())
		close(done)
	}()

	worker.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}
