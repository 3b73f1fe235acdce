package account

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AccountTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_account_transitions_total",
			Help: "Account lifecycle transitions",
		},
		[]string{"transition"},
	)

	AuthenticationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_authentications_total",
			Help: "Authentication attempts by outcome",
		},
		[]string{"outcome"},
	)
)
