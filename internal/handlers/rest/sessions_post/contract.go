//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=sessions_post_test
package sessions_post

import (
	"context"

	"freightforge/internal/entities"
	"freightforge/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
}

type Service interface {
	Open(ctx context.Context, username, password string) (*entities.Session, error)
}
