//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=waybill_test
package waybill

import (
	"context"
	"time"

	"freightforge/internal/entities"
	"freightforge/pkg/logger"
)

type Repository interface {
	ReferenceExists(ctx context.Context, reference string) (bool, error)
	Create(ctx context.Context, shipment entities.Shipment, waybill entities.Waybill) error
	GetByReference(ctx context.Context, reference string) (*entities.Waybill, error)
	MarkDelivered(ctx context.Context, reference string, event entities.TrackingEvent) (*entities.Waybill, error)
	ListByUsername(ctx context.Context, username string) ([]entities.Waybill, error)
}

type ReferenceGenerator interface {
	Generate() (string, error)
}

type TimelineFactory interface {
	Seed(bookedAt time.Time) ([]entities.TrackingEvent, time.Time)
	Delivered(at time.Time) entities.TrackingEvent
}

type EventPublisher interface {
	Publish(ctx context.Context, event entities.WaybillEvent) error
}

type DocumentRenderer interface {
	Render(waybill entities.Waybill) ([]byte, error)
}

type serviceLogger interface {
	Warn(msg string, fields ...logger.Field)
}
