package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestDuration records HTTP request duration by endpoint, method and status.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "yttrends_api_request_duration_seconds",
			Help:    "HTTP request duration in seconds, by endpoint and method.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)

	RequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "yttrends_requests_in_flight",
			Help: "Number of HTTP requests currently being served.",
		},
	)

	// UpstreamCalls counts YouTube Data API calls by endpoint and outcome.
	UpstreamCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "yttrends_upstream_calls_total",
			Help: "Total YouTube Data API calls, by endpoint and outcome.",
		},
		[]string{"endpoint", "outcome"},
	)

	UpstreamDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "yttrends_upstream_duration_seconds",
			Help:    "YouTube Data API call duration in seconds, by endpoint.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// CategoryFallbacks counts rollup entries that received a synthetic name.
	CategoryFallbacks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "yttrends_category_name_fallbacks_total",
			Help: "Category rollup entries resolved to a placeholder name.",
		},
	)

	CacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "yttrends_cache_hits_total",
			Help: "Total Redis category cache hits.",
		},
	)

	CacheMisses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "yttrends_cache_misses_total",
			Help: "Total Redis category cache misses.",
		},
	)

	SummaryCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "yttrends_summary_calls_total",
			Help: "Narrative summary requests, by outcome.",
		},
		[]string{"outcome"},
	)
)

var registerOnce sync.Once

// Register adds all collectors to the default registry. Call once at startup;
// collectors work unregistered, so tests never need it.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			RequestDuration,
			RequestsInFlight,
			UpstreamCalls,
			UpstreamDuration,
			CategoryFallbacks,
			CacheHits,
			CacheMisses,
			SummaryCalls,
		)
	})
}
