package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PaymentsSettled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "memberpay",
			Subsystem: "reconciliation",
			Name:      "payments_settled_total",
			Help:      "Gateway payments settled, by target kind and gateway result",
		},
		[]string{"kind", "result"},
	)

	DuplicateReferences = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "memberpay",
			Subsystem: "reconciliation",
			Name:      "duplicate_references_total",
			Help:      "Settlement attempts rejected because the gateway reference was already recorded",
		},
	)

	GatewayFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "memberpay",
			Subsystem: "reconciliation",
			Name:      "gateway_failures_total",
			Help:      "Verification calls that failed at the payment gateway",
		},
	)

	ManualReceipts = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "memberpay",
			Subsystem: "reconciliation",
			Name:      "manual_receipts_total",
			Help:      "Manual payment receipts submitted for admin review",
		},
	)
)
