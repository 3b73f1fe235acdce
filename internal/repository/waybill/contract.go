package waybill

import (
	"context"

	"freightforge/internal/repository/collection"
)

type Storage interface {
	Load(ctx context.Context, name collection.Name) (collection.Records, bool, error)
	Save(ctx context.Context, batch collection.Batch) error
	Warn(err error)
}
