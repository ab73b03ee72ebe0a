// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RecommendationsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendations_generated_total",
			Help: "Total number of recommendation runs completed",
		},
	)

	ProgramsExcluded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "programs_excluded_total",
			Help: "Programs excluded from a run, by reason",
		},
		[]string{"reason"},
	)

	EngineDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "engine_evaluation_duration_seconds",
			Help: "Duration of a full catalog evaluation in seconds",
		},
	)

	ResultCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "result_cache_requests_total",
			Help: "Recommendation cache lookups, by outcome",
		},
		[]string{"outcome"},
	)
)
