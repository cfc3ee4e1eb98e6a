// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)

	AnalysesCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fit_analyses_completed_total",
			Help: "Total number of fit analyses produced, by path (ai or algorithmic)",
		},
		[]string{"source"},
	)

	AnalysisFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fit_analysis_fallbacks_total",
			Help: "Total number of AI-path failures that fell back, by classified reason",
		},
		[]string{"reason"},
	)

	AIRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ai_request_duration_seconds",
			Help:    "Duration of LLM chat-completion calls in seconds",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 8),
		},
	)

	RateLimiterRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ai_rate_limiter_rejections_total",
			Help: "Total number of AI calls rejected by the rolling-window rate limiter",
		},
	)
)
