package api

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fapshi",
			Subsystem: "client",
			Name:      "requests_total",
			Help:      "API requests that received an HTTP response.",
		},
		[]string{"operation", "code"},
	)

	transportFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fapshi",
			Subsystem: "client",
			Name:      "transport_failures_total",
			Help:      "API requests that failed before receiving a response.",
		},
		[]string{"operation"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fapshi",
			Subsystem: "client",
			Name:      "request_duration_seconds",
			Help:      "API request latency.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

func codeLabel(statusCode int) string { return strconv.Itoa(statusCode) }
