package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Shipment struct {
	WaybillRef      string
	Username        string
	ShipperName     string
	GoodsType       GoodsType
	QuantityTons    int
	Origin          string
	Destination     string
	DispatchDate    time.Time
	TransportOption string
	DistanceKm      int
	RatePerTonKm    decimal.Decimal
	Charge          decimal.Decimal
	Status          ShipmentStatus
	BookedAt        time.Time
}

type GoodsType string

const (
	GoodsWheat   GoodsType = "Wheat"
	GoodsCorn    GoodsType = "Corn"
	GoodsSoybean GoodsType = "Soybean"
)

func (t GoodsType) String() string {
	return string(t)
}

type ShipmentStatus string

const (
	ShipmentBooked    ShipmentStatus = "Booked"
	ShipmentInTransit ShipmentStatus = "In Transit"
	ShipmentDelivered ShipmentStatus = "Delivered"
)

func (s ShipmentStatus) String() string {
	return string(s)
}

type TransportOption struct {
	Code        string
	Description string
	DepartsAt   string
}

// BookingRequest is what a customer submits to book a shipment.
type BookingRequest struct {
	GoodsType       GoodsType
	QuantityTons    int
	Origin          string
	Destination     string
	DispatchDate    time.Time
	TransportOption string
}

type FreightQuote struct {
	GoodsType    GoodsType
	QuantityTons int
	Origin       string
	Destination  string
	DistanceKm   int
	RatePerTonKm decimal.Decimal
	Charge       decimal.Decimal
	Options      []TransportOption
}

type Booking struct {
	Shipment Shipment
	Waybill  Waybill
}
