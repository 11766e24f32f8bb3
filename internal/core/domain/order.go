package domain

import (
	"time"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusFailed    OrderStatus = "FAILED"
	OrderStatusRefunded  OrderStatus = "REFUNDED"
)

// Address is the shipping destination, stored as typed columns
// rather than an opaque blob.
type Address struct {
	Name    string
	Line    string
	City    string
	State   string
	Country string
	Pin     string
	Phone   string
}

type Order struct {
	ID          uint64
	Number      string
	Status      OrderStatus
	TotalAmount int64 // minor units (paise)
	Address     Address
	Waybill     string
	Items       []OrderItem
	CreatedAt   time.Time
}

// OrderItem is a historical price snapshot, immutable after creation.
type OrderItem struct {
	ProductID uint64
	Quantity  int64
	Price     int64 // minor units at time of order
}
