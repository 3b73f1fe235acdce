package collection

import (
	"context"

	"freightforge/pkg/logger"
)

// Driver moves whole collections between memory and durable storage.
//
// Read returns repository.ErrCollectionNotFound for a collection that was never
// written and an error matching repository.ErrDecode when the stored document
// is unreadable. Write must apply every collection of the batch or none.
type Driver interface {
	Read(ctx context.Context, name Name) (Records, error)
	Write(ctx context.Context, batch Batch) error
}

type storeLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
