package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"freightforge/internal/entities"
)

// Registry keeps the pending and approved account sets.
type Registry struct {
	repository Repository
	hasher     PasswordHasher
	// compared against when the username is unknown so the response time does
	// not reveal which usernames exist
	decoyHash string
}

func New(repository Repository, hasher PasswordHasher) (*Registry, error) {
	decoy, err := hasher.HashPassword("decoy-password")
	if err != nil {
		return nil, fmt.Errorf("prepare decoy hash: %w", err)
	}
	return &Registry{
		repository: repository,
		hasher:     hasher,
		decoyHash:  decoy,
	}, nil
}

// Prepare validates a registration and turns it into a pending account with a
// hashed password. Nothing is stored.
func (r *Registry) Prepare(ctx context.Context, modify entities.AccountModify) (*entities.Account, error) {
	if isBlank(modify.Username) ||
		modify.Password == nil || *modify.Password == "" ||
		isBlank(modify.BusinessName) ||
		isBlank(modify.ContactPerson) ||
		isBlank(modify.Email) ||
		isBlank(modify.Mobile) ||
		isBlank(modify.TaxID) ||
		modify.BusinessType == nil ||
		isBlank(modify.Address) ||
		len(modify.IdentityDocument) == 0 {
		return nil, ErrMissingRequiredFields
	}

	username := strings.TrimSpace(*modify.Username)
	if !isValidUsername(username) {
		return nil, ErrInvalidUsername
	}
	if !isValidPassword(*modify.Password) {
		return nil, ErrInvalidPassword
	}
	email := strings.TrimSpace(*modify.Email)
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if !isValidMobile(*modify.Mobile) {
		return nil, ErrInvalidMobile
	}
	if !isValidBusinessType(*modify.BusinessType) {
		return nil, ErrInvalidBusinessType
	}

	exists, err := r.repository.Exists(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if exists {
		return nil, ErrDuplicateUsername
	}

	hash, err := r.hasher.HashPassword(*modify.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	return &entities.Account{
		Username:         username,
		BusinessName:     strings.TrimSpace(*modify.BusinessName),
		ContactPerson:    strings.TrimSpace(*modify.ContactPerson),
		Email:            email,
		Mobile:           strings.TrimSpace(*modify.Mobile),
		TaxID:            strings.TrimSpace(*modify.TaxID),
		BusinessType:     *modify.BusinessType,
		Address:          strings.TrimSpace(*modify.Address),
		PasswordHash:     hash,
		Role:             entities.RoleCustomer,
		ApprovalState:    entities.ApprovalPending,
		IdentityDocument: modify.IdentityDocument,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// Submit stores a prepared account in the pending set.
func (r *Registry) Submit(ctx context.Context, candidate entities.Account) (*entities.Account, error) {
	candidate.Role = entities.RoleCustomer
	candidate.ApprovalState = entities.ApprovalPending

	created, err := r.repository.CreatePending(ctx, candidate)
	if err != nil {
		return nil, fmt.Errorf("create pending account: %w", err)
	}

	AccountTransitionsTotal.WithLabelValues("registered").Inc()
	return created, nil
}

func (r *Registry) Register(ctx context.Context, modify entities.AccountModify) (*entities.Account, error) {
	candidate, err := r.Prepare(ctx, modify)
	if err != nil {
		return nil, err
	}
	return r.Submit(ctx, *candidate)
}

func (r *Registry) Approve(ctx context.Context, username string) (*entities.Account, error) {
	if !isValidUsername(username) {
		return nil, ErrAccountNotFound
	}

	approved, err := r.repository.Approve(ctx, username, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("approve account: %w", err)
	}

	AccountTransitionsTotal.WithLabelValues("approved").Inc()
	return approved, nil
}

func (r *Registry) Reject(ctx context.Context, username string) error {
	if !isValidUsername(username) {
		return ErrAccountNotFound
	}

	if err := r.repository.DeletePending(ctx, username); err != nil {
		return fmt.Errorf("reject account: %w", err)
	}

	AccountTransitionsTotal.WithLabelValues("rejected").Inc()
	return nil
}

// Authenticate succeeds only for an approved account with a matching password.
func (r *Registry) Authenticate(ctx context.Context, username, password string) (*entities.Account, error) {
	found, err := r.repository.GetApproved(ctx, username)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			r.hasher.ComparePassword(password, r.decoyHash)
			AuthenticationsTotal.WithLabelValues("rejected").Inc()
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get approved account: %w", err)
	}

	if found.ApprovalState != entities.ApprovalApproved || !r.hasher.ComparePassword(password, found.PasswordHash) {
		AuthenticationsTotal.WithLabelValues("rejected").Inc()
		return nil, ErrInvalidCredentials
	}

	AuthenticationsTotal.WithLabelValues("accepted").Inc()
	return found, nil
}

func (r *Registry) ListPending(ctx context.Context) ([]entities.Account, error) {
	pending, err := r.repository.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending accounts: %w", err)
	}
	return pending, nil
}

func (r *Registry) GetApproved(ctx context.Context, username string) (*entities.Account, error) {
	found, err := r.repository.GetApproved(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get approved account: %w", err)
	}
	return found, nil
}
