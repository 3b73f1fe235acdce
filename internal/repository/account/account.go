package account

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"freightforge/internal/entities"
	"freightforge/internal/repository/collection"
	"freightforge/internal/service/account"
	"freightforge/pkg/logger"
)

// Repository owns the pending and approved account collections. Every
// mutation is built on copies and only becomes visible after the affected
// collections were saved.
type Repository struct {
	mu       sync.Mutex
	storage  Storage
	log      logger.Logger
	pending  map[string]entities.Account
	approved map[string]entities.Account
}

// Open loads both collections. A collection that was never written is seeded
// from seeds and saved right away.
func Open(ctx context.Context, log logger.Logger, storage Storage, seeds account.Seeds) (*Repository, error) {
	r := &Repository{
		storage: storage,
		log:     log.With(logger.NewField("repository", "account")),
	}

	approved, err := r.load(ctx, collection.AccountsApproved, seeds.Approved)
	if err != nil {
		return nil, err
	}
	pending, err := r.load(ctx, collection.AccountsPending, seeds.Pending)
	if err != nil {
		return nil, err
	}

	for username := range pending {
		if _, ok := approved[username]; ok {
			storage.Warn(fmt.Errorf("account %q is both pending and approved, keeping the approved one", username))
			delete(pending, username)
		}
	}

	r.approved = approved
	r.pending = pending
	return r, nil
}

func (r *Repository) load(ctx context.Context, name collection.Name, seeds []entities.Account) (map[string]entities.Account, error) {
	records, found, err := r.storage.Load(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	if found {
		return decodeAccounts(name, records, r.storage.Warn), nil
	}

	accounts := make(map[string]entities.Account, len(seeds))
	for _, seed := range seeds {
		accounts[seed.Username] = seed
	}

	payload, err := encodeAccounts(accounts)
	if err != nil {
		return nil, fmt.Errorf("encode %s seeds: %w", name, err)
	}
	if err := r.storage.Save(ctx, collection.Batch{name: payload}); err != nil {
		r.log.Warn("seed accounts kept in memory only",
			logger.NewField("collection", name.String()),
			logger.NewField("error", err),
		)
	} else {
		r.log.Info("seeded accounts",
			logger.NewField("collection", name.String()),
			logger.NewField("count", len(accounts)),
		)
	}

	return accounts, nil
}

func (r *Repository) Exists(_ context.Context, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.taken(username), nil
}

func (r *Repository) CreatePending(ctx context.Context, a entities.Account) (*entities.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.taken(a.Username) {
		return nil, account.ErrDuplicateUsername
	}

	pending := maps.Clone(r.pending)
	pending[a.Username] = *clone(a)

	if err := r.commit(ctx, pending, r.approved, collection.AccountsPending); err != nil {
		return nil, fmt.Errorf("create pending account: %w", err)
	}
	return clone(a), nil
}

func (r *Repository) GetApproved(_ context.Context, username string) (*entities.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.approved[username]
	if !ok {
		return nil, account.ErrAccountNotFound
	}
	return clone(a), nil
}

func (r *Repository) Approve(ctx context.Context, username string, approvedAt time.Time) (*entities.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.pending[username]
	if !ok {
		return nil, account.ErrAccountNotFound
	}
	a.ApprovalState = entities.ApprovalApproved
	a.UpdatedAt = approvedAt

	pending := maps.Clone(r.pending)
	delete(pending, username)
	approved := maps.Clone(r.approved)
	approved[username] = a

	err := r.commit(ctx, pending, approved, collection.AccountsPending, collection.AccountsApproved)
	if err != nil {
		return nil, fmt.Errorf("approve account: %w", err)
	}
	return clone(a), nil
}

func (r *Repository) DeletePending(ctx context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.pending[username]; !ok {
		return account.ErrAccountNotFound
	}

	pending := maps.Clone(r.pending)
	delete(pending, username)

	if err := r.commit(ctx, pending, r.approved, collection.AccountsPending); err != nil {
		return fmt.Errorf("delete pending account: %w", err)
	}
	return nil
}

// ListPending returns pending accounts ordered by username.
func (r *Repository) ListPending(_ context.Context) ([]entities.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	usernames := slices.SortedFunc(maps.Keys(r.pending), func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})

	accounts := make([]entities.Account, 0, len(usernames))
	for _, username := range usernames {
		accounts = append(accounts, *clone(r.pending[username]))
	}
	return accounts, nil
}

func (r *Repository) taken(username string) bool {
	_, pending := r.pending[username]
	_, approved := r.approved[username]
	return pending || approved
}

// commit saves the named collections from the given state and swaps it in on success.
func (r *Repository) commit(ctx context.Context, pending, approved map[string]entities.Account, names ...collection.Name) error {
	batch := make(collection.Batch, len(names))
	for _, name := range names {
		var source map[string]entities.Account
		switch name {
		case collection.AccountsPending:
			source = pending
		case collection.AccountsApproved:
			source = approved
		default:
			return errors.New("unknown account collection " + name.String())
		}

		payload, err := encodeAccounts(source)
		if err != nil {
			return err
		}
		batch[name] = payload
	}

	if err := r.storage.Save(ctx, batch); err != nil {
		return err
	}

	r.pending = pending
	r.approved = approved
	return nil
}
