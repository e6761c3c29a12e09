package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommender_requests_total",
			Help: "Total number of recommendation requests by candidate source",
		},
		[]string{"source"},
	)

	StoreErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommender_store_errors_total",
			Help: "Total number of catalog store failures and empty results by error code",
		},
		[]string{"error_code"},
	)

	FallbackTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommender_fallback_total",
			Help: "Total number of requests served from the static fallback pool",
		},
	)

	PipelineDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "recommender_pipeline_duration_seconds",
			Help: "Duration of one full recommendation pipeline invocation",
		},
	)

	CandidatesReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommender_candidates_returned",
			Help:    "Number of candidates returned per request after truncation",
			Buckets: prometheus.LinearBuckets(0, 1, 11),
		},
	)
)

// Candidate source labels for RecommendationsTotal.
const (
	SourceStore    = "store"
	SourceFallback = "fallback"
)
