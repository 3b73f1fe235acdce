//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=accounts_post_test
package accounts_post

import (
	"context"

	"freightforge/internal/entities"
	"freightforge/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
}

type Service interface {
	Start(ctx context.Context, modify entities.AccountModify) (*entities.VerificationTicket, error)
}
