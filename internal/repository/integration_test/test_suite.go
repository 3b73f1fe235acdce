package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"freightforge/internal/pkg/config"
	"freightforge/internal/pkg/postgres"
	"freightforge/internal/repository/pgstore"
	"freightforge/pkg/logger/zap_adapter"
	"freightforge/pkg/querier"
	"freightforge/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var (
	poolInstance *pgxpool.Pool
	poolOnce     sync.Once
)

// GetPool connects with the POSTGRES_* variables exported by the Makefile and
// applies the migrations once per test binary.
func GetPool() *pgxpool.Pool {
	poolOnce.Do(func() {
		cfg := &config.Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		}

		ctx := context.Background()

		pool, err := postgres.NewConnPool(ctx, zap_adapter.NewNop(), cfg)
		if err != nil {
			log.Fatalf("connect test database: %v", err)
		}
		if err := pgstore.Migrate(ctx, pool); err != nil {
			log.Fatalf("migrate test database: %v", err)
		}

		poolInstance = pool
	})

	return poolInstance
}

func GetQuerier() *querier.Querier {
	return querier.New(GetPool(), pgxv5.DefaultCtxGetter)
}

func GetTxManager() *tx.Manager {
	return tx.New(GetPool())
}

func SetupDB(t *testing.T, setupSql string) {
	t.Helper()
	if setupSql == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSql)
	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `TRUNCATE TABLE collection_records, collections CASCADE;`)
	require.NoError(t, err)
}
