package entities

import "time"

type Waybill struct {
	Reference string
	Details   Shipment
	Tracking  []TrackingEvent
	Status    ShipmentStatus
	ETA       time.Time
}

func (w Waybill) IsDelivered() bool {
	return w.Status == ShipmentDelivered
}

type TrackingStatus string

const (
	TrackingBookingConfirmed TrackingStatus = "Booking Confirmed"
	TrackingInTransit        TrackingStatus = "In Transit"
	TrackingArriving         TrackingStatus = "Arriving"
	TrackingDelivered        TrackingStatus = "Delivered"
)

func (s TrackingStatus) String() string {
	return string(s)
}

type TrackingEvent struct {
	Status TrackingStatus
	At     time.Time
}

type WaybillEventType string

const (
	WaybillIssued    WaybillEventType = "waybill.issued"
	WaybillDelivered WaybillEventType = "waybill.delivered"
)

// WaybillEvent is published whenever a waybill changes state.
type WaybillEvent struct {
	Type      WaybillEventType
	Reference string
	Username  string
	Status    ShipmentStatus
	At        time.Time
}
