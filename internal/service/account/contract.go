//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=account_test
package account

import (
	"context"
	"time"

	"freightforge/internal/entities"
)

type Repository interface {
	Exists(ctx context.Context, username string) (bool, error)
	CreatePending(ctx context.Context, account entities.Account) (*entities.Account, error)
	GetApproved(ctx context.Context, username string) (*entities.Account, error)
	Approve(ctx context.Context, username string, approvedAt time.Time) (*entities.Account, error)
	DeletePending(ctx context.Context, username string) error
	ListPending(ctx context.Context) ([]entities.Account, error)
}

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
}
