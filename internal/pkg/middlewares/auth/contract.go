//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"freightforge/internal/pkg/tokens"
	"freightforge/pkg/logger"
)

type TokenValidator interface {
	Validate(tokenString string) (*tokens.UserClaims, error)
}

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
}
