package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// GatewayFailures counts failed calls against the content store, per collection and operation.
	GatewayFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_failures_total",
			Help: "Failed content store operations.",
		},
		[]string{"collection", "op"},
	)

	// ContentRefreshes counts orchestrator refreshes by outcome: published, stale or cancelled.
	ContentRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_refresh_total",
			Help: "Content refreshes by outcome.",
		},
		[]string{"outcome"},
	)

	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "uploads_total",
			Help: "Image uploads by kind and result.",
		},
		[]string{"kind", "result"},
	)
)
