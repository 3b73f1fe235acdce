package waybill

import (
	"context"
	"errors"
	"fmt"
	"time"

	"freightforge/internal/entities"
	"freightforge/pkg/logger"
)

const maxReferenceAttempts = 5

type Tracker struct {
	repository Repository
	references ReferenceGenerator
	timeline   TimelineFactory
	publisher  EventPublisher
	renderer   DocumentRenderer
	log        serviceLogger
}

func New(
	repository Repository,
	references ReferenceGenerator,
	timeline TimelineFactory,
	publisher EventPublisher,
	renderer DocumentRenderer,
	log serviceLogger,
) *Tracker {
	return &Tracker{
		repository: repository,
		references: references,
		timeline:   timeline,
		publisher:  publisher,
		renderer:   renderer,
		log:        log,
	}
}

// Issue assigns a fresh reference to the shipment and stores it together with
// its waybill.
func (t *Tracker) Issue(ctx context.Context, shipment entities.Shipment) (*entities.Waybill, error) {
	for attempt := 0; attempt < maxReferenceAttempts; attempt++ {
		reference, err := t.references.Generate()
		if err != nil {
			return nil, fmt.Errorf("generate reference: %w", err)
		}

		exists, err := t.repository.ReferenceExists(ctx, reference)
		if err != nil {
			return nil, fmt.Errorf("check reference: %w", err)
		}
		if exists {
			ReferenceCollisionsTotal.Inc()
			continue
		}

		shipment.WaybillRef = reference
		shipment.Status = entities.ShipmentBooked
		tracking, eta := t.timeline.Seed(shipment.BookedAt)

		issued := entities.Waybill{
			Reference: reference,
			Details:   shipment,
			Tracking:  tracking,
			Status:    entities.ShipmentBooked,
			ETA:       eta,
		}

		err = t.repository.Create(ctx, shipment, issued)
		if errors.Is(err, ErrReferenceConflict) {
			ReferenceCollisionsTotal.Inc()
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("store waybill: %w", err)
		}

		WaybillsIssuedTotal.Inc()
		t.publish(ctx, entities.WaybillIssued, shipment.Username, issued, shipment.BookedAt)
		return &issued, nil
	}

	return nil, fmt.Errorf("issue waybill after %d attempts: %w", maxReferenceAttempts, ErrReferenceConflict)
}

func (t *Tracker) Find(ctx context.Context, reference string) (*entities.Waybill, error) {
	if reference == "" {
		return nil, ErrInvalidReference
	}

	found, err := t.repository.GetByReference(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("get waybill: %w", err)
	}
	return found, nil
}

// AdvanceToDelivered marks the waybill and its shipment delivered. It is not
// repeatable: the second call reports ErrAlreadyDelivered.
func (t *Tracker) AdvanceToDelivered(ctx context.Context, reference string) (*entities.Waybill, error) {
	if reference == "" {
		return nil, ErrInvalidReference
	}

	event := t.timeline.Delivered(time.Now())
	delivered, err := t.repository.MarkDelivered(ctx, reference, event)
	if err != nil {
		return nil, fmt.Errorf("mark delivered: %w", err)
	}

	WaybillDeliveriesTotal.Inc()
	t.publish(ctx, entities.WaybillDelivered, delivered.Details.Username, *delivered, event.At)
	return delivered, nil
}

// ListByAccount returns the account's waybills, newest booking first.
func (t *Tracker) ListByAccount(ctx context.Context, username string) ([]entities.Waybill, error) {
	waybills, err := t.repository.ListByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("list waybills: %w", err)
	}
	return waybills, nil
}

func (t *Tracker) Document(ctx context.Context, reference string) ([]byte, error) {
	found, err := t.Find(ctx, reference)
	if err != nil {
		return nil, err
	}

	document, err := t.renderer.Render(*found)
	if err != nil {
		return nil, fmt.Errorf("render waybill %s: %w", found.Reference, err)
	}
	return document, nil
}

func (t *Tracker) publish(ctx context.Context, eventType entities.WaybillEventType, username string, w entities.Waybill, at time.Time) {
	event := entities.WaybillEvent{
		Type:      eventType,
		Reference: w.Reference,
		Username:  username,
		Status:    w.Status,
		At:        at,
	}

	if err := t.publisher.Publish(ctx, event); err != nil {
		EventPublishFailuresTotal.WithLabelValues(string(eventType)).Inc()
		t.log.Warn("waybill event not published",
			logger.NewField("type", string(eventType)),
			logger.NewField("reference", w.Reference),
			logger.NewField("error", err),
		)
	}
}
