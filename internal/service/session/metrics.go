package session

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var SessionsOpenedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "portal_sessions_total",
		Help: "Sign-in attempts by outcome",
	},
	[]string{"outcome"},
)
