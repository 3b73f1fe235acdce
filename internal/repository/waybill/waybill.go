package waybill

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"freightforge/internal/entities"
	"freightforge/internal/repository/collection"
	"freightforge/internal/service/waybill"
	"freightforge/pkg/logger"
)

// Repository owns the shipments and waybills collections. A shipment and its
// waybill are always written in the same batch.
type Repository struct {
	mu        sync.Mutex
	storage   Storage
	log       logger.Logger
	shipments map[string]entities.Shipment
	waybills  map[string]entities.Waybill
}

func Open(ctx context.Context, log logger.Logger, storage Storage) (*Repository, error) {
	r := &Repository{
		storage: storage,
		log:     log.With(logger.NewField("repository", "waybill")),
	}

	shipmentRecords, found, err := storage.Load(ctx, collection.Shipments)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", collection.Shipments, err)
	}
	if !found {
		r.log.Info("starting with empty collection", logger.NewField("collection", collection.Shipments.String()))
	}
	shipments := make(map[string]entities.Shipment, len(shipmentRecords))
	for key, record := range collection.Decode[ShipmentRecord](collection.Shipments, shipmentRecords, storage.Warn) {
		shipments[key] = ShipmentToDomain(collection.Shipments, key, record, storage.Warn)
	}

	waybillRecords, found, err := storage.Load(ctx, collection.Waybills)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", collection.Waybills, err)
	}
	if !found {
		r.log.Info("starting with empty collection", logger.NewField("collection", collection.Waybills.String()))
	}
	waybills := make(map[string]entities.Waybill, len(waybillRecords))
	for key, record := range collection.Decode[WaybillRecord](collection.Waybills, waybillRecords, storage.Warn) {
		waybills[key] = WaybillToDomain(collection.Waybills, key, record, storage.Warn)
	}

	r.shipments = shipments
	r.waybills = waybills
	return r, nil
}

func (r *Repository) ReferenceExists(_ context.Context, reference string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.taken(reference), nil
}

func (r *Repository) Create(ctx context.Context, shipment entities.Shipment, w entities.Waybill) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.taken(w.Reference) {
		return waybill.ErrReferenceConflict
	}

	shipments := maps.Clone(r.shipments)
	shipments[w.Reference] = shipment
	waybills := maps.Clone(r.waybills)
	waybills[w.Reference] = *cloneWaybill(w)

	if err := r.commit(ctx, shipments, waybills); err != nil {
		return fmt.Errorf("create waybill: %w", err)
	}
	return nil
}

func (r *Repository) GetByReference(_ context.Context, reference string) (*entities.Waybill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.waybills[reference]
	if !ok {
		return nil, waybill.ErrWaybillNotFound
	}
	return cloneWaybill(w), nil
}

func (r *Repository) MarkDelivered(ctx context.Context, reference string, event entities.TrackingEvent) (*entities.Waybill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.waybills[reference]
	if !ok {
		return nil, waybill.ErrWaybillNotFound
	}
	if current.IsDelivered() {
		return nil, waybill.ErrAlreadyDelivered
	}

	delivered := *cloneWaybill(current)
	delivered.Status = entities.ShipmentDelivered
	delivered.Tracking = append(delivered.Tracking, event)

	waybills := maps.Clone(r.waybills)
	waybills[reference] = delivered

	shipments := r.shipments
	if shipment, ok := r.shipments[reference]; ok {
		shipment.Status = entities.ShipmentDelivered
		shipments = maps.Clone(r.shipments)
		shipments[reference] = shipment
	}

	if err := r.commit(ctx, shipments, waybills); err != nil {
		return nil, fmt.Errorf("mark waybill delivered: %w", err)
	}
	return cloneWaybill(delivered), nil
}

// ListByUsername returns the account's waybills, newest booking first.
func (r *Repository) ListByUsername(_ context.Context, username string) ([]entities.Waybill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	type owned struct {
		waybill  entities.Waybill
		bookedAt time.Time
	}

	var found []owned
	for reference, w := range r.waybills {
		owner, bookedAt := w.Details.Username, w.Details.BookedAt
		if shipment, ok := r.shipments[reference]; ok {
			owner, bookedAt = shipment.Username, shipment.BookedAt
		}
		if owner != username {
			continue
		}
		found = append(found, owned{waybill: *cloneWaybill(w), bookedAt: bookedAt})
	}

	slices.SortFunc(found, func(a, b owned) int {
		if c := b.bookedAt.Compare(a.bookedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.waybill.Reference, b.waybill.Reference)
	})

	out := make([]entities.Waybill, 0, len(found))
	for _, o := range found {
		out = append(out, o.waybill)
	}
	return out, nil
}

func (r *Repository) taken(reference string) bool {
	_, shipment := r.shipments[reference]
	_, issued := r.waybills[reference]
	return shipment || issued
}

func (r *Repository) commit(ctx context.Context, shipments map[string]entities.Shipment, waybills map[string]entities.Waybill) error {
	shipmentRecords, err := encodeShipments(shipments)
	if err != nil {
		return err
	}
	waybillRecords, err := encodeWaybills(waybills)
	if err != nil {
		return err
	}

	err = r.storage.Save(ctx, collection.Batch{
		collection.Shipments: shipmentRecords,
		collection.Waybills:  waybillRecords,
	})
	if err != nil {
		return err
	}

	r.shipments = shipments
	r.waybills = waybills
	return nil
}
