//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=waybill_deliver_post_test
package waybill_deliver_post

import (
	"context"

	"freightforge/internal/entities"
	"freightforge/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
}

type Service interface {
	AdvanceToDelivered(ctx context.Context, reference string) (*entities.Waybill, error)
}
