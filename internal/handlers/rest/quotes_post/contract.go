//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=quotes_post_test
package quotes_post

import (
	"context"

	"freightforge/internal/entities"
	"freightforge/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
}

type Service interface {
	Quote(ctx context.Context, request entities.BookingRequest) (*entities.FreightQuote, error)
}
