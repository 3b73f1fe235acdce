package waybill

import (
	"encoding/json"
	"time"
)

const dispatchDateLayout = "2006-01-02"

type ShipmentRecord struct {
	WaybillRef      string    `json:"waybill_ref"`
	Username        string    `json:"username"`
	ShipperName     string    `json:"shipper_name"`
	GoodsType       string    `json:"goods_type"`
	QuantityTons    int       `json:"quantity_tons"`
	Origin          string    `json:"origin"`
	Destination     string    `json:"destination"`
	DispatchDate    string    `json:"dispatch_date"`
	TransportOption string    `json:"transport_option"`
	DistanceKm      int       `json:"distance_km"`
	RatePerTonKm    string    `json:"rate_per_ton_km"`
	Charge          string    `json:"charge"`
	Status          string    `json:"status"`
	BookedAt        time.Time `json:"booked_at"`
}

// WaybillRecord keeps details and tracking as embedded JSON so a damaged
// nested value does not cost the whole record.
type WaybillRecord struct {
	Reference string          `json:"reference"`
	Details   json.RawMessage `json:"details"`
	Tracking  json.RawMessage `json:"tracking"`
	Status    string          `json:"status"`
	ETA       time.Time       `json:"eta"`
}

type TrackingEventRecord struct {
	Status string    `json:"status"`
	At     time.Time `json:"at"`
}
