//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_test
package booking

import (
	"context"

	"freightforge/internal/entities"

	"github.com/shopspring/decimal"
)

type RateFactory interface {
	Distance(origin, destination string) int
	RatePerTonKm() decimal.Decimal
	Charge(quantityTons, distanceKm int) decimal.Decimal
	TransportOptions() []entities.TransportOption
}

type AccountService interface {
	GetApproved(ctx context.Context, username string) (*entities.Account, error)
}

type WaybillService interface {
	Issue(ctx context.Context, shipment entities.Shipment) (*entities.Waybill, error)
}
