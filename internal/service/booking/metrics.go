package booking

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QuotesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_quotes_total",
		Help: "Total number of rate inquiries by goods type",
	}, []string{"goods_type"})

	BookingsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_bookings_total",
		Help: "Total number of booked shipments by goods type",
	}, []string{"goods_type"})
)
