package app

import (
	"context"
	"fmt"

	"freightforge/internal/gateway/otp"
	"freightforge/internal/handlers/rest/account_approve_post"
	"freightforge/internal/handlers/rest/account_reject_post"
	"freightforge/internal/handlers/rest/account_verification_post"
	"freightforge/internal/handlers/rest/accounts_pending_get"
	"freightforge/internal/handlers/rest/accounts_post"
	"freightforge/internal/handlers/rest/quotes_post"
	"freightforge/internal/handlers/rest/sessions_post"
	"freightforge/internal/handlers/rest/shipments_get"
	"freightforge/internal/handlers/rest/shipments_post"
	"freightforge/internal/handlers/rest/waybill_deliver_post"
	"freightforge/internal/handlers/rest/waybill_document_get"
	"freightforge/internal/handlers/rest/waybill_get"
	"freightforge/internal/handlers/tasks/verification_cleanup"
	"freightforge/internal/pkg/config"
	"freightforge/internal/pkg/factory/freight_rate"
	"freightforge/internal/pkg/factory/otp_code"
	"freightforge/internal/pkg/factory/tracking_timeline"
	"freightforge/internal/pkg/factory/waybill_reference"
	"freightforge/internal/pkg/middlewares/auth"
	"freightforge/internal/pkg/psswd"
	"freightforge/internal/pkg/tokens"
	"freightforge/internal/pkg/waybill_document"
	accountRepo "freightforge/internal/repository/account"
	"freightforge/internal/repository/collection"
	waybillRepo "freightforge/internal/repository/waybill"
	accountService "freightforge/internal/service/account"
	"freightforge/internal/service/booking"
	"freightforge/internal/service/registration"
	"freightforge/internal/service/session"
	waybillService "freightforge/internal/service/waybill"
	"freightforge/pkg/background"
	"freightforge/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

const portalName = "FreightForge"

type Application struct {
	ServiceAccounts     ServiceAccounts
	ServiceRegistration ServiceRegistration
	ServiceSessions     ServiceSessions
	ServiceBooking      ServiceBooking
	ServiceWaybills     ServiceWaybills
	Tokens              auth.TokenValidator
	BackgroundWorkers   *background.Worker
}

type ServiceAccounts interface {
	accounts_pending_get.Service
	account_approve_post.Service
	account_reject_post.Service
}

type ServiceRegistration interface {
	accounts_post.Service
	account_verification_post.Service
}

type ServiceSessions interface {
	sessions_post.Service
}

type ServiceBooking interface {
	quotes_post.Service
	shipments_post.Service
}

type ServiceWaybills interface {
	shipments_get.Service
	waybill_get.Service
	waybill_deliver_post.Service
	waybill_document_get.Service
}

func provideCollectionStore(driver collection.Driver, log logger.Logger) *collection.Store {
	return collection.NewStore(driver, log)
}

func providePasswordHasher() *psswd.Hasher {
	return psswd.New(bcrypt.DefaultCost)
}

func provideSeeds(hasher *psswd.Hasher, cfg *config.Config) (accountService.Seeds, error) {
	return accountService.BuildSeeds(hasher, cfg.Auth.AdminPassword, cfg.Auth.SeedDemoAccounts)
}

func provideAccountRepository(
	ctx context.Context,
	log logger.Logger,
	store *collection.Store,
	seeds accountService.Seeds,
) (*accountRepo.Repository, error) {
	repository, err := accountRepo.Open(ctx, log, store, seeds)
	if err != nil {
		return nil, fmt.Errorf("open account repository: %w", err)
	}
	return repository, nil
}

func provideWaybillRepository(ctx context.Context, log logger.Logger, store *collection.Store) (*waybillRepo.Repository, error) {
	repository, err := waybillRepo.Open(ctx, log, store)
	if err != nil {
		return nil, fmt.Errorf("open waybill repository: %w", err)
	}
	return repository, nil
}

func provideAccountRegistry(repository *accountRepo.Repository, hasher *psswd.Hasher) (*accountService.Registry, error) {
	return accountService.New(repository, hasher)
}

func provideVerification(
	log logger.Logger,
	cfg *config.Config,
	store registration.ChallengeStore,
	accounts *accountService.Registry,
) *registration.Verification {
	return registration.New(
		registration.Config{
			TTL:        cfg.Verification.TTL,
			ExposeCode: cfg.Verification.ExposeCode,
		},
		store,
		accounts,
		otp_code.New(),
		otp.NewLogSender(log.With(logger.NewField("gateway", "otp"))),
	)
}

func provideTokenManager(cfg *config.Config) *tokens.Manager {
	return tokens.NewManager(cfg.Auth.JWTSecret, cfg.Auth.JWTTTL)
}

func provideSessions(accounts *accountService.Registry, manager *tokens.Manager) *session.Sessions {
	return session.New(accounts, manager)
}

func provideWaybillTracker(
	log logger.Logger,
	repository *waybillRepo.Repository,
	publisher waybillService.EventPublisher,
) *waybillService.Tracker {
	return waybillService.New(
		repository,
		waybill_reference.New(),
		tracking_timeline.New(),
		publisher,
		waybill_document.New(portalName),
		log.With(logger.NewField("service", "waybill")),
	)
}

func provideBooking(
	cfg *config.Config,
	accounts *accountService.Registry,
	tracker *waybillService.Tracker,
) *booking.Booking {
	return booking.New(freight_rate.New(cfg.Freight.RatePerTonKm), accounts, tracker)
}

// provideVerificationCleanupTask returns nil for stores that expire
// challenges on their own.
func provideVerificationCleanupTask(
	log logger.Logger,
	store registration.ChallengeStore,
	cfg *config.Config,
) *verification_cleanup.VerificationCleanup {
	expiring, ok := store.(verification_cleanup.Store)
	if !ok {
		return nil
	}
	return verification_cleanup.NewVerificationCleanup(log, expiring, cfg.Verification.CleanupInterval)
}

func provideTaskList(cleanup *verification_cleanup.VerificationCleanup) []background.Task {
	tasks := make([]background.Task, 0, 1)
	if cleanup != nil {
		tasks = append(tasks, cleanup)
	}
	return tasks
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	worker, err := background.New(ctx, log, tasks)
	if err != nil {
		return nil, fmt.Errorf("background workers: %w", err)
	}
	log.Info("background workers started", logger.NewField("tasks", worker.Tasks()))
	return worker, nil
}
