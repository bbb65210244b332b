package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Resolution Metrics
var (
	ResultsResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameResultsResolved,
			Help: HelpTextResultsResolved,
		},
		[]string{LabelAction},
	)

	PredictionsGraded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePredictionsGraded,
			Help: HelpTextPredictionsGraded,
		},
		[]string{LabelOutcome},
	)

	ScorecardRoundsGraded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameScorecardRoundsGraded,
			Help: HelpTextScorecardRoundsGraded,
		},
		[]string{LabelOutcome},
	)

	ResolutionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameResolutionDuration,
			Help:    HelpTextResolutionDuration,
			Buckets: ResolutionLatencyBuckets,
		},
	)

	EventStatusTransitions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameEventStatusTransitions,
			Help: HelpTextEventStatusTransitions,
		},
	)
)

// Business Metrics
var (
	PicksSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePicksSubmitted,
			Help: HelpTextPicksSubmitted,
		},
		[]string{LabelKind},
	)

	Logins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLogins,
			Help: HelpTextLogins,
		},
		[]string{LabelKind, LabelStatus},
	)
)

// Background Job Metrics
var (
	JobsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameJobsProcessed,
			Help: HelpTextJobsProcessed,
		},
		[]string{LabelJob, LabelStatus},
	)
)
