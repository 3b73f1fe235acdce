//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=session_test
package session

import (
	"context"
	"time"

	"freightforge/internal/entities"
)

type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (*entities.Account, error)
}

type TokenIssuer interface {
	Issue(account entities.Account, now time.Time) (string, time.Time, error)
}
