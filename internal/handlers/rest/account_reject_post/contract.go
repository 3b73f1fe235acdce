//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=account_reject_post_test
package account_reject_post

import (
	"context"

	"freightforge/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
}

type Service interface {
	Reject(ctx context.Context, username string) error
}
