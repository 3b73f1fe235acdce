//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=account_approve_post_test
package account_approve_post

import (
	"context"

	"freightforge/internal/entities"
	"freightforge/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
}

type Service interface {
	Approve(ctx context.Context, username string) (*entities.Account, error)
}
