//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=registration_test
package registration

import (
	"context"
	"time"

	"freightforge/internal/entities"
)

type ChallengeStore interface {
	Save(ctx context.Context, challenge entities.VerificationChallenge, ttl time.Duration) error
	Get(ctx context.Context, id string) (*entities.VerificationChallenge, error)
	Delete(ctx context.Context, id string) error
}

type AccountService interface {
	Prepare(ctx context.Context, modify entities.AccountModify) (*entities.Account, error)
	Submit(ctx context.Context, candidate entities.Account) (*entities.Account, error)
}

type CodeGenerator interface {
	Generate() (string, error)
}

type CodeSender interface {
	Send(ctx context.Context, contact, code string) error
}
