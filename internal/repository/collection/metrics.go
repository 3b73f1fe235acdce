package collection

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	StorageWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_storage_writes_total",
			Help: "Collection writes by collection and outcome",
		},
		[]string{"collection", "outcome"},
	)

	StorageWriteDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "portal_storage_write_duration_seconds",
			Help:    "Duration of a batch write to the storage driver",
			Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		},
	)

	StorageDecodeFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_storage_decode_failures_total",
			Help: "Persisted documents, records or fields that could not be decoded",
		},
		[]string{"collection"},
	)
)
