//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=accounts_pending_get_test
package accounts_pending_get

import (
	"context"

	"freightforge/internal/entities"
	"freightforge/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
}

type Service interface {
	ListPending(ctx context.Context) ([]entities.Account, error)
}
