package domain

import (
	"time"
)

type ShipmentTaskStatus string

const (
	ShipmentTaskPending    ShipmentTaskStatus = "PENDING"
	ShipmentTaskDispatched ShipmentTaskStatus = "DISPATCHED"
	ShipmentTaskFailed     ShipmentTaskStatus = "FAILED"
)

// ShipmentTask is an outbox row written in the same transaction as the
// payment confirmation. The shipment worker drains it, so a courier
// outage never blocks or rolls back a confirmed order.
type ShipmentTask struct {
	ID          uint64
	OrderID     uint64
	Status      ShipmentTaskStatus
	RetryCount  int
	LastError   string
	NextRetryAt time.Time
	CreatedAt   time.Time
}

type PaymentMode string

const (
	PaymentModePrepaid PaymentMode = "Pre-paid"
	PaymentModeCOD     PaymentMode = "COD"
)

// ShipmentRequest is the courier-agnostic shipment order.
type ShipmentRequest struct {
	OrderNumber       string
	Destination       Address
	ProductsDesc      string
	WeightGrams       int64
	PaymentMode       PaymentMode
	CollectableAmount int64 // minor units, COD only
}

// ShipmentResult is the normalized courier response.
type ShipmentResult struct {
	Waybill     string
	Serviceable bool
	RawStatus   string
}

type TrackingStatus struct {
	Waybill      string
	Status       string
	StatusType   string
	Location     string
	Destination  string
	PromisedDate string
	Instructions string
}
