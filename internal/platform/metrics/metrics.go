package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Métricas de proceso. Se registran en el registry default y se exponen en /metrics.
var (
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "petfinder_upstream_requests_total",
			Help: "Requests to external APIs by upstream and outcome",
		},
		[]string{"upstream", "method", "status"}, // status: código HTTP o "error"
	)

	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "petfinder_upstream_request_duration_seconds",
			Help:    "Latency of requests to external APIs",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"upstream"},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "petfinder_cache_lookups_total",
			Help: "Cache lookups by cache name and result",
		},
		[]string{"cache", "result"}, // hit, miss, expired
	)

	TokenRefreshes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "petfinder_token_refreshes_total",
			Help: "Bearer token exchanges against the auth endpoint",
		},
	)

	GeocodeMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "petfinder_geocode_misses_total",
			Help: "Geocoding queries without a match",
		},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "petfinder_http_requests_total",
			Help: "HTTP requests served by route pattern and status code",
		},
		[]string{"method", "route", "status"},
	)
)
