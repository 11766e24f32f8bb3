package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopkart/fulfillment/internal/core/domain"
	"github.com/shopkart/fulfillment/internal/core/port"
	"github.com/shopkart/fulfillment/internal/core/port/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newPaymentRouter(t *testing.T, service port.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler, err := NewPaymentHandler(service, zap.NewNop())
	require.NoError(t, err)

	router := gin.New()
	router.POST("/api/payments/verify", handler.VerifyPayment)
	router.POST("/api/payments/webhook", handler.Webhook)
	return router
}

func TestPaymentHandler_VerifyPayment(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	confirmed := domain.Order{ID: 1001, Number: "1001", Status: domain.OrderStatusConfirmed}

	body := `{"order_number":"1001","razorpay_order_id":"order_rzp123",` +
		`"razorpay_payment_id":"pay_abc","razorpay_signature":"deadbeef"}`

	tests := []struct {
		name      string
		body      string
		mock      func(service *mock.MockService)
		expStatus int
	}{
		{
			name: "Verify good",
			body: body,
			mock: func(service *mock.MockService) {
				service.EXPECT().VerifyPayment(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req *port.VerificationRequest) (*domain.Order, error) {
						assert.Equal(t, "1001", req.OrderNumber)
						assert.Equal(t, domain.PaymentMethodRazorpay, req.Method)
						return &confirmed, nil
					})
			},
			expStatus: http.StatusOK,
		},
		{
			name: "Signature mismatch",
			body: body,
			mock: func(service *mock.MockService) {
				service.EXPECT().VerifyPayment(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrSignatureMismatch)
			},
			expStatus: http.StatusPaymentRequired,
		},
		{
			name: "Stock shortage",
			body: body,
			mock: func(service *mock.MockService) {
				service.EXPECT().VerifyPayment(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrInsufficientStock)
			},
			expStatus: http.StatusConflict,
		},
		{
			name: "Unsupported method",
			body: body,
			mock: func(service *mock.MockService) {
				service.EXPECT().VerifyPayment(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrUnsupportedPayMethod)
			},
			expStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "Unknown order",
			body: body,
			mock: func(service *mock.MockService) {
				service.EXPECT().VerifyPayment(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrOrderNotFound)
			},
			expStatus: http.StatusNotFound,
		},
		{
			name:      "Missing required fields",
			body:      `{"order_number":"1001"}`,
			mock:      func(service *mock.MockService) {},
			expStatus: http.StatusBadRequest,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			service := mock.NewMockService(mockCtrl)
			test.mock(service)
			router := newPaymentRouter(t, service)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/payments/verify",
				bytes.NewBufferString(test.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(rec, req)

			assert.Equal(t, test.expStatus, rec.Code)
		})
	}
}

func TestPaymentHandler_Webhook(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	payload := []byte(`{"event":"payment.captured"}`)

	t.Run("Signed event accepted", func(t *testing.T) {
		service := mock.NewMockService(mockCtrl)
		service.EXPECT().HandleWebhookEvent(gomock.Any(), payload, "sig").Return(nil)
		router := newPaymentRouter(t, service)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", bytes.NewReader(payload))
		req.Header.Set(webhookSignatureHeader, "sig")
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Missing signature header rejected", func(t *testing.T) {
		service := mock.NewMockService(mockCtrl)
		router := newPaymentRouter(t, service)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", bytes.NewReader(payload))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	})

	t.Run("Bad signature rejected", func(t *testing.T) {
		service := mock.NewMockService(mockCtrl)
		service.EXPECT().HandleWebhookEvent(gomock.Any(), payload, "bad").
			Return(domain.ErrSignatureMismatch)
		router := newPaymentRouter(t, service)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", bytes.NewReader(payload))
		req.Header.Set(webhookSignatureHeader, "bad")
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	})
}
