package port

import (
	"context"

	"github.com/shopkart/fulfillment/internal/core/domain"
)

//go:generate mockgen -source=courier.go -destination=mock/courier.go -package=mock
type Courier interface {
	CreateShipment(ctx context.Context, req *domain.ShipmentRequest) (*domain.ShipmentResult, error)
	TrackShipment(ctx context.Context, waybill string) (*domain.TrackingStatus, error)
	CancelShipment(ctx context.Context, waybill string, reason string) error
}
