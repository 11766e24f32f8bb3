package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Configuration errors. Fatal, never retried.
	ErrConfiguration = errors.New("configuration error")

	// * Transient remote errors. Safe to retry with backoff.
	ErrRemoteUnavailable = errors.New("remote service unavailable")

	// * Business errors.
	ErrOrderNotFound        = errors.New("order not found")
	ErrPaymentNotFound      = errors.New("payment record not found")
	ErrSignatureMismatch    = errors.New("payment signature verification failed")
	ErrPaymentNotPending    = errors.New("payment is not awaiting verification")
	ErrPaymentNotCompleted  = errors.New("payment is not completed")
	ErrInsufficientStock    = errors.New("not enough stock to fulfill order")
	ErrEmptyOrder           = errors.New("order has no items")
	ErrOrderNotShipped      = errors.New("order has no shipment yet")
	ErrShipmentNotFound     = errors.New("shipment not found by waybill")
	ErrUnsupportedPayMethod = errors.New("unsupported payment method")
)
