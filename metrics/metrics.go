// Package metrics exposes the prometheus collectors for the loan engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Calculations counts schedule computations by convention and outcome.
	Calculations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loan_calculations_total",
			Help: "Total schedule computations by convention and status",
		},
		[]string{"convention", "status"},
	)

	// CacheLookups counts schedule cache hits and misses.
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loan_cache_lookups_total",
			Help: "Schedule cache lookups by result",
		},
		[]string{"result"},
	)

	// SchedulePeriods observes how long generated schedules run, in
	// periods. Prepayments and payoffs shorten them.
	SchedulePeriods = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "loan_schedule_periods",
			Help:    "Length of generated schedules in periods",
			Buckets: []float64{12, 36, 60, 120, 180, 240, 300, 360, 480},
		},
	)
)
