package main

import (
	"context"
	"fmt"

	"freightforge/internal/gateway/kafka/waybill_events"
	"freightforge/internal/pkg/config"
	"freightforge/internal/pkg/kafka"
	"freightforge/internal/pkg/postgres"
	"freightforge/internal/pkg/redisclient"
	"freightforge/internal/repository/challenge"
	"freightforge/internal/repository/collection"
	"freightforge/internal/repository/filestore"
	"freightforge/internal/repository/pgstore"
	"freightforge/internal/service/registration"
	"freightforge/internal/service/waybill"
	"freightforge/pkg/logger"
	"freightforge/pkg/querier"
	"freightforge/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
)

// infrastructure holds the external connections picked by config. closers run
// in reverse order on shutdown.
type infrastructure struct {
	driver     collection.Driver
	challenges registration.ChallengeStore
	publisher  waybill.EventPublisher
	closers    []func() error
}

func (i *infrastructure) Close(log logger.Logger) {
	for idx := len(i.closers) - 1; idx >= 0; idx-- {
		if err := i.closers[idx](); err != nil {
			log.Error("close infrastructure", logger.NewField("error", err))
		}
	}
}

func connectInfrastructure(ctx context.Context, log logger.Logger, cfg *config.Config) (*infrastructure, error) {
	infra := &infrastructure{}

	if err := infra.connectStorage(ctx, log, cfg); err != nil {
		infra.Close(log)
		return nil, err
	}
	if err := infra.connectChallengeStore(ctx, log, cfg); err != nil {
		infra.Close(log)
		return nil, err
	}
	if err := infra.connectPublisher(ctx, log, cfg); err != nil {
		infra.Close(log)
		return nil, err
	}

	return infra, nil
}

func (i *infrastructure) connectStorage(ctx context.Context, log logger.Logger, cfg *config.Config) error {
	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
		if err != nil {
			return fmt.Errorf("database: %w", err)
		}
		i.closers = append(i.closers, func() error {
			pool.Close()
			return nil
		})

		if err := pgstore.Migrate(ctx, pool); err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}
		i.driver = pgstore.New(querier.New(pool, pgxv5.DefaultCtxGetter), tx.New(pool))
	default:
		driver, err := filestore.New(cfg.Storage.DataDir)
		if err != nil {
			return fmt.Errorf("file storage: %w", err)
		}
		i.driver = driver
	}

	log.Info("storage ready", logger.NewField("driver", cfg.Storage.Driver))
	return nil
}

func (i *infrastructure) connectChallengeStore(ctx context.Context, log logger.Logger, cfg *config.Config) error {
	if cfg.Verification.Store != config.OTPStoreRedis {
		i.challenges = challenge.NewMemoryStore()
		return nil
	}

	client, err := redisclient.New(ctx, log, &cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	i.closers = append(i.closers, client.Close)
	i.challenges = challenge.NewRedisStore(client)
	return nil
}

func (i *infrastructure) connectPublisher(ctx context.Context, log logger.Logger, cfg *config.Config) error {
	if !cfg.Kafka.Enabled() {
		log.Warn("KAFKA_BROKERS not set, waybill events are dropped")
		i.publisher = waybill_events.NewNop()
		return nil
	}

	producer, err := kafka.NewSyncProducer(ctx, log, &cfg.Kafka)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	i.closers = append(i.closers, producer.Close)
	i.publisher = waybill_events.New(producer, cfg.Kafka.Topic)
	return nil
}
