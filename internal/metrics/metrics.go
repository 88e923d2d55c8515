// Package metrics holds Prometheus instruments that are used across the
// application.  All collectors are registered with the global registry, so
// importing this package in main.go is enough to expose them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	GatewayRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_requests_total",
			Help: "Cumulative gateway round trips by collection and operation.",
		},
		[]string{"collection", "op"})

	GatewayErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_errors_total",
			Help: "Cumulative gateway failures by collection and operation.",
		},
		[]string{"collection", "op"})

	SignupTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "newsletter_signup_total",
			Help: "Cumulative successful newsletter signups.",
		})

	SignupConflictTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "newsletter_signup_conflict_total",
			Help: "Cumulative signups rejected as duplicate emails.",
		})

	CachedPrograms = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cached_programs",
			Help: "Number of program records in the in-memory list.",
		})

	CachedSubscribers = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cached_subscribers",
			Help: "Number of subscriber records in the in-memory list.",
		})
)

func init() {
	prometheus.MustRegister(
		GatewayRequestsTotal,
		GatewayErrorsTotal,
		SignupTotal,
		SignupConflictTotal,
		CachedPrograms,
		CachedSubscribers,
	)
}
