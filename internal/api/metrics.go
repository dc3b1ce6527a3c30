package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "telvora_client",
			Name:      "requests_total",
			Help:      "API requests that completed with a success status.",
		},
		[]string{"method"},
	)

	requestErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "telvora_client",
			Name:      "request_errors_total",
			Help:      "API requests that failed at transport level or returned a non-success status.",
		},
		[]string{"method"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "telvora_client",
			Name:      "request_duration_seconds",
			Help:      "Wall-clock duration of API round trips.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)
