package registration

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"freightforge/internal/entities"
	"freightforge/internal/service/account"

	"github.com/google/uuid"
)

const MaxAttempts = 5

type Config struct {
	TTL        time.Duration
	ExposeCode bool
}

// Verification holds a prepared registration behind a one-time code until the
// code is confirmed.
type Verification struct {
	// serializes attempt accounting within this process
	mu       sync.Mutex
	config   Config
	store    ChallengeStore
	accounts AccountService
	codes    CodeGenerator
	sender   CodeSender
}

func New(config Config, store ChallengeStore, accounts AccountService, codes CodeGenerator, sender CodeSender) *Verification {
	return &Verification{
		config:   config,
		store:    store,
		accounts: accounts,
		codes:    codes,
		sender:   sender,
	}
}

func (v *Verification) Start(ctx context.Context, modify entities.AccountModify) (*entities.VerificationTicket, error) {
	candidate, err := v.accounts.Prepare(ctx, modify)
	if err != nil {
		return nil, err
	}

	code, err := v.codes.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate code: %w", err)
	}

	challenge := entities.VerificationChallenge{
		ID:        uuid.NewString(),
		Contact:   candidate.Email,
		Code:      code,
		Candidate: *candidate,
		ExpiresAt: time.Now().UTC().Add(v.config.TTL),
	}

	if err := v.store.Save(ctx, challenge, v.config.TTL); err != nil {
		return nil, fmt.Errorf("save challenge: %w", err)
	}

	if err := v.sender.Send(ctx, challenge.Contact, code); err != nil {
		_ = v.store.Delete(ctx, challenge.ID)
		return nil, fmt.Errorf("send code: %w", err)
	}

	VerificationsTotal.WithLabelValues("started").Inc()
	ticket := &entities.VerificationTicket{
		ChallengeID: challenge.ID,
		Contact:     challenge.Contact,
		ExpiresAt:   challenge.ExpiresAt,
	}
	if v.config.ExposeCode {
		ticket.DemoCode = code
	}
	return ticket, nil
}

// Confirm commits the prepared account when the code matches. A username taken
// while the challenge was open is still reported as a duplicate.
func (v *Verification) Confirm(ctx context.Context, challengeID, code string) (*entities.Account, error) {
	challengeID, code = strings.TrimSpace(challengeID), strings.TrimSpace(code)
	if challengeID == "" || code == "" {
		return nil, ErrMissingCode
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	challenge, err := v.store.Get(ctx, challengeID)
	if err != nil {
		if errors.Is(err, ErrChallengeNotFound) {
			return nil, ErrChallengeNotFound
		}
		return nil, fmt.Errorf("get challenge: %w", err)
	}

	now := time.Now().UTC()
	if challenge.Expired(now) {
		_ = v.store.Delete(ctx, challengeID)
		VerificationsTotal.WithLabelValues("expired").Inc()
		return nil, ErrChallengeNotFound
	}

	if subtle.ConstantTimeCompare([]byte(challenge.Code), []byte(code)) != 1 {
		return nil, v.registerMiss(ctx, *challenge, now)
	}

	created, err := v.accounts.Submit(ctx, challenge.Candidate)
	if err != nil {
		// a failed write keeps the challenge so the same code can be retried
		if errors.Is(err, account.ErrDuplicateUsername) {
			_ = v.store.Delete(ctx, challengeID)
		}
		return nil, err
	}

	if err := v.store.Delete(ctx, challengeID); err != nil {
		return nil, fmt.Errorf("delete challenge: %w", err)
	}

	VerificationsTotal.WithLabelValues("confirmed").Inc()
	return created, nil
}

func (v *Verification) registerMiss(ctx context.Context, challenge entities.VerificationChallenge, now time.Time) error {
	challenge.Attempts++

	if challenge.Attempts >= MaxAttempts {
		if err := v.store.Delete(ctx, challenge.ID); err != nil {
			return fmt.Errorf("delete challenge: %w", err)
		}
		VerificationsTotal.WithLabelValues("locked").Inc()
		return ErrTooManyAttempts
	}

	if err := v.store.Save(ctx, challenge, challenge.ExpiresAt.Sub(now)); err != nil {
		return fmt.Errorf("save challenge: %w", err)
	}
	VerificationsTotal.WithLabelValues("invalid_code").Inc()
	return ErrInvalidCode
}
