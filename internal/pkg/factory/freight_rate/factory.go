package freight_rate

import (
	"strings"

	"freightforge/internal/entities"

	"github.com/shopspring/decimal"
)

// ReferenceDistanceKm is charged for any pair that is not in the route table.
const ReferenceDistanceKm = 900

type route struct {
	from, to   string
	distanceKm int
}

var routes = []route{
	{from: "Quebec, QC", to: "Windsor, ON", distanceKm: 900},
	{from: "Montreal, QC", to: "Halifax, NS", distanceKm: 1250},
	{from: "Winnipeg, MB", to: "Thunder Bay, ON", distanceKm: 700},
	{from: "Regina, SK", to: "Vancouver, BC", distanceKm: 1750},
	{from: "Saskatoon, SK", to: "Prince Rupert, BC", distanceKm: 1550},
	{from: "Edmonton, AB", to: "Vancouver, BC", distanceKm: 1160},
}

var transportOptions = []entities.TransportOption{
	{Code: "A", Description: "Train A - Covered Hopper x25", DepartsAt: "09:00"},
	{Code: "B", Description: "Train B - Boxcar x22", DepartsAt: "14:00"},
	{Code: "C", Description: "Train C - Bulk Grain Car x30", DepartsAt: "19:00"},
}

type RateFactory struct {
	rate      decimal.Decimal
	distances map[[2]string]int
}

func New(ratePerTonKm decimal.Decimal) *RateFactory {
	distances := make(map[[2]string]int, len(routes)*2)
	for _, r := range routes {
		from, to := normalize(r.from), normalize(r.to)
		distances[[2]string{from, to}] = r.distanceKm
		distances[[2]string{to, from}] = r.distanceKm
	}
	return &RateFactory{
		rate:      ratePerTonKm,
		distances: distances,
	}
}

func (f *RateFactory) Distance(origin, destination string) int {
	if distance, ok := f.distances[[2]string{normalize(origin), normalize(destination)}]; ok {
		return distance
	}
	return ReferenceDistanceKm
}

func (f *RateFactory) RatePerTonKm() decimal.Decimal {
	return f.rate
}

// Charge is quantity x distance x rate, rounded to cents.
func (f *RateFactory) Charge(quantityTons, distanceKm int) decimal.Decimal {
	return decimal.NewFromInt(int64(quantityTons)).
		Mul(decimal.NewFromInt(int64(distanceKm))).
		Mul(f.rate).
		Round(2)
}

func (f *RateFactory) TransportOptions() []entities.TransportOption {
	out := make([]entities.TransportOption, len(transportOptions))
	copy(out, transportOptions)
	return out
}

func normalize(place string) string {
	return strings.ToLower(strings.Join(strings.Fields(place), " "))
}
