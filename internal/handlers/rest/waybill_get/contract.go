//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=waybill_get_test
package waybill_get

import (
	"context"

	"freightforge/internal/entities"
	"freightforge/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
}

type Service interface {
	Find(ctx context.Context, reference string) (*entities.Waybill, error)
}
