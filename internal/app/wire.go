//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"freightforge/internal/pkg/config"
	"freightforge/internal/pkg/middlewares/auth"
	"freightforge/internal/pkg/tokens"
	"freightforge/internal/repository/collection"
	accountService "freightforge/internal/service/account"
	"freightforge/internal/service/booking"
	"freightforge/internal/service/registration"
	"freightforge/internal/service/session"
	waybillService "freightforge/internal/service/waybill"
	"freightforge/pkg/logger"

	"github.com/google/wire"
)

// InitializeApplication builds the portal on top of already connected
// infrastructure: the collection driver, the challenge store and the event
// publisher are chosen by cmd/portal from config.
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	driver collection.Driver,
	challenges registration.ChallengeStore,
	publisher waybillService.EventPublisher,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideCollectionStore,
		providePasswordHasher,
		provideSeeds,
		provideAccountRepository,
		provideWaybillRepository,

		provideAccountRegistry,
		provideVerification,
		provideSessions,
		provideTokenManager,
		provideWaybillTracker,
		provideBooking,

		provideVerificationCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceAccounts), new(*accountService.Registry)),
		wire.Bind(new(ServiceRegistration), new(*registration.Verification)),
		wire.Bind(new(ServiceSessions), new(*session.Sessions)),
		wire.Bind(new(ServiceBooking), new(*booking.Booking)),
		wire.Bind(new(ServiceWaybills), new(*waybillService.Tracker)),
		wire.Bind(new(auth.TokenValidator), new(*tokens.Manager)),
	)
	return &Application{}, nil
}
