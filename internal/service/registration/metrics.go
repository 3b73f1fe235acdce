package registration

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var VerificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "portal_registration_verifications_total",
	Help: "Registration verification outcomes",
}, []string{"outcome"})
