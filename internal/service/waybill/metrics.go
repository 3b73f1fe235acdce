package waybill

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WaybillsIssuedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "portal_waybills_issued_total",
		Help: "Total number of issued waybills",
	})

	WaybillDeliveriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "portal_waybill_deliveries_total",
		Help: "Total number of waybills advanced to Delivered",
	})

	ReferenceCollisionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "portal_waybill_reference_collisions_total",
		Help: "Generated waybill references that were already taken",
	})

	EventPublishFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_waybill_event_publish_failures_total",
		Help: "Waybill events that could not be published",
	}, []string{"type"})
)
