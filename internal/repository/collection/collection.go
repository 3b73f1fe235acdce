package collection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"freightforge/internal/repository"
	"freightforge/pkg/logger"
)

type Name string

const (
	AccountsApproved Name = "accounts-approved"
	AccountsPending  Name = "accounts-pending"
	Shipments        Name = "shipments"
	Waybills         Name = "waybills"
)

func (n Name) String() string {
	return string(n)
}

// Records maps a record key to its JSON encoding.
type Records map[string]json.RawMessage

// Batch is a set of collections written together. Every collection in a batch
// is rewritten in full.
type Batch map[Name]Records

// Store loads and saves whole collections through a driver. It owns the
// fallback and reporting policy, drivers only move bytes.
type Store struct {
	driver Driver
	log    storeLogger
}

func NewStore(driver Driver, log storeLogger) *Store {
	return &Store{
		driver: driver,
		log:    log.With(logger.NewField("component", "collection_store")),
	}
}

// Load returns the records of a collection and whether it exists at all.
// An unreadable collection is reported as an empty existing one so the
// caller does not reseed over it.
func (s *Store) Load(ctx context.Context, name Name) (Records, bool, error) {
	records, err := s.driver.Read(ctx, name)
	switch {
	case err == nil:
		if records == nil {
			records = Records{}
		}
		return records, true, nil
	case errors.Is(err, repository.ErrCollectionNotFound):
		return Records{}, false, nil
	case errors.Is(err, repository.ErrDecode):
		s.Warn(err)
		return Records{}, true, nil
	default:
		return nil, false, fmt.Errorf("read collection %s: %w", name, err)
	}
}

// Save writes every collection in the batch. Driver failures come back wrapped
// in repository.ErrWriteFailed.
func (s *Store) Save(ctx context.Context, batch Batch) error {
	start := time.Now()
	err := s.driver.Write(ctx, batch)
	StorageWriteDuration.Observe(time.Since(start).Seconds())

	outcome := "ok"
	if err != nil {
		outcome = "failed"
	}
	for name := range batch {
		StorageWritesTotal.WithLabelValues(name.String(), outcome).Inc()
	}

	if err != nil {
		s.log.Error("collection write failed",
			logger.NewField("collections", len(batch)),
			logger.NewField("error", err),
		)
		return fmt.Errorf("%w: %w", repository.ErrWriteFailed, err)
	}
	return nil
}

// Warn reports a recovered decode problem.
func (s *Store) Warn(err error) {
	var decodeErr *repository.DecodeError
	collection := "unknown"
	if errors.As(err, &decodeErr) {
		collection = decodeErr.Collection
	}
	StorageDecodeFailuresTotal.WithLabelValues(collection).Inc()
	s.log.Warn("persisted data skipped", logger.NewField("error", err))
}

// Encode turns typed records into a collection payload.
func Encode[T any](records map[string]T) (Records, error) {
	out := make(Records, len(records))
	for key, record := range records {
		raw, err := json.Marshal(record)
		if err != nil {
			return nil, fmt.Errorf("encode record %q: %w", key, err)
		}
		out[key] = raw
	}
	return out, nil
}

// Decode turns a collection payload into typed records. A record that does not
// decode is dropped and reported through warn.
func Decode[T any](name Name, records Records, warn func(error)) map[string]T {
	out := make(map[string]T, len(records))
	for key, raw := range records {
		var record T
		if err := json.Unmarshal(raw, &record); err != nil {
			warn(&repository.DecodeError{Collection: name.String(), Key: key, Err: err})
			continue
		}
		out[key] = record
	}
	return out
}
