//go:generate mockgen -source=verification_cleanup.go -destination=./verification_cleanup_mocks_test.go -package=verification_cleanup_test
package verification_cleanup

import (
	"context"
	"time"

	"freightforge/pkg/logger"
)

type Store interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
}

// VerificationCleanup purges expired registration challenges from stores
// that have no native expiry.
type VerificationCleanup struct {
	log      taskLogger
	store    Store
	interval time.Duration
}

func NewVerificationCleanup(log taskLogger, store Store, interval time.Duration) *VerificationCleanup {
	return &VerificationCleanup{
		log:      log,
		store:    store,
		interval: interval,
	}
}

func (v *VerificationCleanup) TTL() time.Duration {
	return v.interval
}

func (v *VerificationCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, v.interval)
	defer cancel()

	removed, err := v.store.DeleteExpired(ctxWithTimeout)
	if removed > 0 {
		v.log.Info("verification cleanup",
			logger.NewField("expired_challenges", removed),
		)
	}

	return err
}

func (v *VerificationCleanup) Info() string {
	return "verification cleanup"
}
