package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"freightforge/internal/entities"
)

type Booking struct {
	rates          RateFactory
	accountService AccountService
	waybillService WaybillService
}

func New(rates RateFactory, accountService AccountService, waybillService WaybillService) *Booking {
	return &Booking{
		rates:          rates,
		accountService: accountService,
		waybillService: waybillService,
	}
}

// Quote prices a shipment without booking it.
func (b *Booking) Quote(_ context.Context, request entities.BookingRequest) (*entities.FreightQuote, error) {
	if err := validate(request); err != nil {
		return nil, err
	}

	origin, destination := strings.TrimSpace(request.Origin), strings.TrimSpace(request.Destination)
	distance := b.rates.Distance(origin, destination)

	QuotesTotal.WithLabelValues(request.GoodsType.String()).Inc()
	return &entities.FreightQuote{
		GoodsType:    request.GoodsType,
		QuantityTons: request.QuantityTons,
		Origin:       origin,
		Destination:  destination,
		DistanceKm:   distance,
		RatePerTonKm: b.rates.RatePerTonKm(),
		Charge:       b.rates.Charge(request.QuantityTons, distance),
		Options:      b.rates.TransportOptions(),
	}, nil
}

// Book prices the request the same way Quote does and issues a waybill for it.
func (b *Booking) Book(ctx context.Context, username string, request entities.BookingRequest) (*entities.Booking, error) {
	if err := validate(request); err != nil {
		return nil, err
	}

	owner, err := b.accountService.GetApproved(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get booking account: %w", err)
	}

	origin, destination := strings.TrimSpace(request.Origin), strings.TrimSpace(request.Destination)
	distance := b.rates.Distance(origin, destination)

	shipment := entities.Shipment{
		Username:        owner.Username,
		ShipperName:     owner.BusinessName,
		GoodsType:       request.GoodsType,
		QuantityTons:    request.QuantityTons,
		Origin:          origin,
		Destination:     destination,
		DispatchDate:    request.DispatchDate,
		TransportOption: strings.TrimSpace(request.TransportOption),
		DistanceKm:      distance,
		RatePerTonKm:    b.rates.RatePerTonKm(),
		Charge:          b.rates.Charge(request.QuantityTons, distance),
		Status:          entities.ShipmentBooked,
		BookedAt:        time.Now().UTC(),
	}

	issued, err := b.waybillService.Issue(ctx, shipment)
	if err != nil {
		return nil, fmt.Errorf("issue waybill: %w", err)
	}

	BookingsTotal.WithLabelValues(request.GoodsType.String()).Inc()
	return &entities.Booking{
		Shipment: issued.Details,
		Waybill:  *issued,
	}, nil
}
