package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts backend calls by method and status ("0" when no response arrived).
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "recyclehub",
			Subsystem: "http_client",
			Name:      "requests_total",
			Help:      "Total number of backend API requests",
		},
		[]string{"method", "status_code"},
	)

	// HTTPRequestDuration tracks backend call latency.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "recyclehub",
			Subsystem: "http_client",
			Name:      "request_duration_seconds",
			Help:      "Duration of backend API requests in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method"},
	)
)
