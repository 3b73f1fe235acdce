package session

import (
	"context"
	"fmt"
	"time"

	"freightforge/internal/entities"
)

type Sessions struct {
	accounts Authenticator
	tokens   TokenIssuer
}

func New(accounts Authenticator, tokens TokenIssuer) *Sessions {
	return &Sessions{
		accounts: accounts,
		tokens:   tokens,
	}
}

// Open authenticates the caller and issues a bearer token for the account.
func (s *Sessions) Open(ctx context.Context, username, password string) (*entities.Session, error) {
	account, err := s.accounts.Authenticate(ctx, username, password)
	if err != nil {
		SessionsOpenedTotal.WithLabelValues("rejected").Inc()
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	token, expiresAt, err := s.tokens.Issue(*account, time.Now().UTC())
	if err != nil {
		SessionsOpenedTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("issue token: %w", err)
	}

	SessionsOpenedTotal.WithLabelValues("ok").Inc()
	return &entities.Session{
		Token:     token,
		ExpiresAt: expiresAt,
		Account:   *account,
	}, nil
}
