package pgstore

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"slices"

	"freightforge/internal/repository"
	"freightforge/internal/repository/collection"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// insertChunk keeps a single INSERT well below the 65535 bind parameter limit.
const insertChunk = 1000

//go:embed migrations/*.sql
var migrations embed.FS

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Driver stores every collection as rows of JSONB documents.
type Driver struct {
	querier   Querier
	txManager TxManager
}

func New(querier Querier, txManager TxManager) *Driver {
	return &Driver{
		querier:   querier,
		txManager: txManager,
	}
}

// Migrate applies the embedded schema migrations.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	return migrate(ctx, db)
}

func migrate(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

func (d *Driver) Read(ctx context.Context, name collection.Name) (collection.Records, error) {
	query, args, err := qb.
		Select("c.name", "r.key", "r.payload").
		From("collections c").
		LeftJoin("collection_records r ON r.collection = c.name").
		Where(sq.Eq{"c.name": name.String()}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build read %s: %w", name, err)
	}

	rows, err := d.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	defer rows.Close()

	var (
		found   bool
		records = collection.Records{}
	)
	for rows.Next() {
		var (
			collectionName string
			key            *string
			payload        []byte
		)
		if err := rows.Scan(&collectionName, &key, &payload); err != nil {
			return nil, fmt.Errorf("scan %s: %w", name, err)
		}
		found = true
		if key == nil {
			continue
		}
		records[*key] = payload
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	if !found {
		return nil, repository.ErrCollectionNotFound
	}
	return records, nil
}

// Write replaces every collection of the batch inside one transaction.
func (d *Driver) Write(ctx context.Context, batch collection.Batch) error {
	names := make([]collection.Name, 0, len(batch))
	for name := range batch {
		names = append(names, name)
	}
	slices.Sort(names)

	return d.txManager.Do(ctx, func(ctx context.Context) error {
		for _, name := range names {
			if err := d.replace(ctx, name, batch[name]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (d *Driver) replace(ctx context.Context, name collection.Name, records collection.Records) error {
	upsert, args, err := qb.
		Insert("collections").
		Columns("name", "updated_at").
		Values(name.String(), sq.Expr("NOW()")).
		Suffix("ON CONFLICT (name) DO UPDATE SET updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert %s: %w", name, err)
	}
	if _, err := d.querier.Exec(ctx, upsert, args...); err != nil {
		return fmt.Errorf("upsert %s: %w", name, err)
	}

	del, args, err := qb.
		Delete("collection_records").
		Where(sq.Eq{"collection": name.String()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete %s: %w", name, err)
	}
	if _, err := d.querier.Exec(ctx, del, args...); err != nil {
		return fmt.Errorf("clear %s: %w", name, err)
	}

	keys := make([]string, 0, len(records))
	for key := range records {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for chunk := range slices.Chunk(keys, insertChunk) {
		insert := qb.
			Insert("collection_records").
			Columns("collection", "key", "payload")
		for _, key := range chunk {
			insert = insert.Values(name.String(), key, string(records[key]))
		}

		query, args, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("build insert %s: %w", name, err)
		}
		if _, err := d.querier.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("insert %s: %w", name, err)
		}
	}

	return nil
}
