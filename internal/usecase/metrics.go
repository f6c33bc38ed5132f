package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	stepTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "giftflow_step_transitions_total",
			Help: "Wizard step transitions by from/to step",
		},
		[]string{"from", "to"},
	)

	paymentVerifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "giftflow_payment_verifications_total",
			Help: "Payment verification attempts by outcome",
		},
		[]string{"outcome"},
	)
)
