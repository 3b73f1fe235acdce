package redisclient

import (
	"context"
	"fmt"

	"freightforge/internal/pkg/config"
	"freightforge/pkg/logger"
	"freightforge/pkg/retrier"
	"freightforge/pkg/retrier/backoff_adapter"

	"github.com/redis/go-redis/v9"
)

// New opens a client and waits until the server answers PING.
func New(ctx context.Context, log logger.Logger, cfg *config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	redisLog := log.With(
		logger.NewField("addr", cfg.Addr),
		logger.NewField("db", cfg.DB),
	)

	if err := ping(ctx, redisLog, client); err != nil {
		if closeErr := client.Close(); closeErr != nil {
			return nil, fmt.Errorf("%w (failed to close: %w)", err, closeErr)
		}
		return nil, err
	}

	return client, nil
}

func ping(ctx context.Context, log logger.Logger, client *redis.Client) error {
	var attempt uint64
	err := backoff_adapter.New(retrier.Connectivity()).ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.Info("pinging redis", logger.NewField("attempt", attempt))
		return client.Ping(ctx).Err()
	})
	if err != nil {
		log.Error("redis unreachable",
			logger.NewField("attempts", attempt),
			logger.NewField("error", err),
		)
		return fmt.Errorf("ping redis: %w", err)
	}

	log.Info("redis connection established", logger.NewField("attempts", attempt))
	return nil
}
