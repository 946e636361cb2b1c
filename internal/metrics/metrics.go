// Package metrics defines the Prometheus metrics for the appraisal service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pit"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "1 if the last liveness probe succeeded, 0 otherwise.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "1 if the last readiness probe succeeded, 0 otherwise.",
	})

	RateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_requests_total",
		Help:      "Requests rejected by the server-side rate limiter.",
	})
)

// Appraisal pipeline metrics.
var (
	AppraisalsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appraisals_total",
		Help:      "Total appraisals produced, labeled by base price source.",
	}, []string{"base_source"})

	EstimateAmounts = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "estimate_amount_dollars",
		Help:      "Distribution of point estimate amounts in USD.",
		Buckets:   prometheus.ExponentialBuckets(25, 2, 10), // 25 .. 12800
	})

	ExtractionDefaultsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "extraction_defaults_total",
		Help:      "Extractions that produced no brand and no model.",
	})

	ExtractionCacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "extraction_cache_hits_total",
		Help:      "Extraction results served from the LRU cache.",
	})
)

// Market simulation metrics.
var (
	MarketSamplesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "market_samples_total",
		Help:      "Total simulated market samples generated.",
	})

	RecommendationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recommendations_total",
		Help:      "Total recommendation sets generated.",
	})
)

// Storage metrics.
var (
	StoredAppraisals = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "stored_appraisals",
		Help:      "Current number of persisted appraisal records.",
	})

	RetentionPrunedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "retention_pruned_total",
		Help:      "Appraisal records removed by the retention job.",
	})
)
