package waybill

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"freightforge/internal/entities"
	"freightforge/internal/repository"
	"freightforge/internal/repository/collection"

	"github.com/shopspring/decimal"
)

func ShipmentFromDomain(s entities.Shipment) ShipmentRecord {
	record := ShipmentRecord{
		WaybillRef:      s.WaybillRef,
		Username:        s.Username,
		ShipperName:     s.ShipperName,
		GoodsType:       s.GoodsType.String(),
		QuantityTons:    s.QuantityTons,
		Origin:          s.Origin,
		Destination:     s.Destination,
		TransportOption: s.TransportOption,
		DistanceKm:      s.DistanceKm,
		RatePerTonKm:    s.RatePerTonKm.String(),
		Charge:          s.Charge.StringFixed(2),
		Status:          s.Status.String(),
		BookedAt:        s.BookedAt,
	}
	if !s.DispatchDate.IsZero() {
		record.DispatchDate = s.DispatchDate.Format(dispatchDateLayout)
	}
	return record
}

func ShipmentToDomain(name collection.Name, key string, r ShipmentRecord, warn func(error)) entities.Shipment {
	shipment := entities.Shipment{
		WaybillRef:      r.WaybillRef,
		Username:        r.Username,
		ShipperName:     r.ShipperName,
		GoodsType:       entities.GoodsType(r.GoodsType),
		QuantityTons:    r.QuantityTons,
		Origin:          r.Origin,
		Destination:     r.Destination,
		TransportOption: r.TransportOption,
		DistanceKm:      r.DistanceKm,
		Status:          entities.ShipmentStatus(r.Status),
		BookedAt:        r.BookedAt,
	}
	if shipment.WaybillRef == "" {
		shipment.WaybillRef = key
	}

	fieldErr := func(field string, err error) {
		warn(&repository.DecodeError{Collection: name.String(), Key: key, Field: field, Err: err})
	}

	if r.DispatchDate != "" {
		date, err := time.Parse(dispatchDateLayout, r.DispatchDate)
		if err != nil {
			fieldErr("dispatch_date", err)
		} else {
			shipment.DispatchDate = date
		}
	}
	if r.RatePerTonKm != "" {
		rate, err := decimal.NewFromString(r.RatePerTonKm)
		if err != nil {
			fieldErr("rate_per_ton_km", err)
		} else {
			shipment.RatePerTonKm = rate
		}
	}
	if r.Charge != "" {
		charge, err := decimal.NewFromString(r.Charge)
		if err != nil {
			fieldErr("charge", err)
		} else {
			shipment.Charge = charge
		}
	}

	return shipment
}

func WaybillFromDomain(w entities.Waybill) (WaybillRecord, error) {
	details, err := json.Marshal(ShipmentFromDomain(w.Details))
	if err != nil {
		return WaybillRecord{}, fmt.Errorf("encode details of %s: %w", w.Reference, err)
	}

	events := make([]TrackingEventRecord, 0, len(w.Tracking))
	for _, e := range w.Tracking {
		events = append(events, TrackingEventRecord{Status: e.Status.String(), At: e.At})
	}
	tracking, err := json.Marshal(events)
	if err != nil {
		return WaybillRecord{}, fmt.Errorf("encode tracking of %s: %w", w.Reference, err)
	}

	return WaybillRecord{
		Reference: w.Reference,
		Details:   details,
		Tracking:  tracking,
		Status:    w.Status.String(),
		ETA:       w.ETA,
	}, nil
}

// WaybillToDomain falls back to empty details or an empty tracking list when
// the nested value does not decode.
func WaybillToDomain(name collection.Name, key string, r WaybillRecord, warn func(error)) entities.Waybill {
	w := entities.Waybill{
		Reference: r.Reference,
		Status:    entities.ShipmentStatus(r.Status),
		ETA:       r.ETA,
		Tracking:  []entities.TrackingEvent{},
	}
	if w.Reference == "" {
		w.Reference = key
	}

	if len(r.Details) > 0 {
		var details ShipmentRecord
		if err := json.Unmarshal(r.Details, &details); err != nil {
			warn(&repository.DecodeError{Collection: name.String(), Key: key, Field: "details", Err: err})
		} else {
			w.Details = ShipmentToDomain(name, key, details, warn)
		}
	}

	if len(r.Tracking) > 0 {
		var events []TrackingEventRecord
		if err := json.Unmarshal(r.Tracking, &events); err != nil {
			warn(&repository.DecodeError{Collection: name.String(), Key: key, Field: "tracking", Err: err})
		} else {
			for _, e := range events {
				w.Tracking = append(w.Tracking, entities.TrackingEvent{
					Status: entities.TrackingStatus(e.Status),
					At:     e.At,
				})
			}
		}
	}

	return w
}

func encodeShipments(shipments map[string]entities.Shipment) (collection.Records, error) {
	records := make(map[string]ShipmentRecord, len(shipments))
	for key, s := range shipments {
		records[key] = ShipmentFromDomain(s)
	}
	return collection.Encode(records)
}

func encodeWaybills(waybills map[string]entities.Waybill) (collection.Records, error) {
	records := make(map[string]WaybillRecord, len(waybills))
	for key, w := range waybills {
		record, err := WaybillFromDomain(w)
		if err != nil {
			return nil, err
		}
		records[key] = record
	}
	return collection.Encode(records)
}

func cloneWaybill(w entities.Waybill) *entities.Waybill {
	out := w
	out.Tracking = slices.Clone(w.Tracking)
	return &out
}
