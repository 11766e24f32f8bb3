package domain

import (
	"time"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

const PaymentMethodRazorpay = "razorpay"

type Payment struct {
	ID               uint64
	OrderID          uint64
	TransactionID    string // gateway order id, binding key together with OrderID
	GatewayPaymentID string
	Status           PaymentStatus
	Method           string
	GatewayResponse  []byte // raw gateway payload, persisted as jsonb
	PaidAt           *time.Time
	CreatedAt        time.Time
}
