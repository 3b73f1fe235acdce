//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=account_verification_post_test
package account_verification_post

import (
	"context"

	"freightforge/internal/entities"
	"freightforge/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
}

type Service interface {
	Confirm(ctx context.Context, challengeID, code string) (*entities.Account, error)
}
