//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipments_post_test
package shipments_post

import (
	"context"

	"freightforge/internal/entities"
	"freightforge/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
}

type Service interface {
	Book(ctx context.Context, username string, request entities.BookingRequest) (*entities.Booking, error)
}
