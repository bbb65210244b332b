package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Resolution metric names
const (
	MetricNameResultsResolved        = "fightpicks_results_resolved_total"
	MetricNamePredictionsGraded      = "fightpicks_predictions_graded_total"
	MetricNameScorecardRoundsGraded  = "fightpicks_scorecard_rounds_graded_total"
	MetricNameResolutionDuration     = "fightpicks_resolution_duration_seconds"
	MetricNameEventStatusTransitions = "fightpicks_event_status_transitions_total"
)

// Business metric names
const (
	MetricNamePicksSubmitted = "fightpicks_picks_submitted_total"
	MetricNameLogins         = "fightpicks_logins_total"
)

// Background job metric names
const (
	MetricNameJobsProcessed = "fightpicks_jobs_processed_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Resolution metric help text
const (
	HelpTextResultsResolved        = "Total number of resolution passes by action"
	HelpTextPredictionsGraded      = "Total number of predictions graded by outcome"
	HelpTextScorecardRoundsGraded  = "Total number of user scorecard rounds graded by outcome"
	HelpTextResolutionDuration     = "Time spent in a resolution transaction in seconds"
	HelpTextEventStatusTransitions = "Total number of event is_upcoming flips"
)

// Business metric help text
const (
	HelpTextPicksSubmitted = "Total number of predictions and scorecards submitted"
	HelpTextLogins         = "Total number of login attempts by kind and status"
)

// Background job metric help text
const (
	HelpTextJobsProcessed = "Total number of background jobs processed by job and status"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelAction  = "action"
	LabelOutcome = "outcome"
	LabelKind    = "kind"
	LabelJob     = "job"
)

// ============================================================================
// Label Values
// ============================================================================

// Grading outcomes
const (
	OutcomeCorrect   = "correct"
	OutcomeIncorrect = "incorrect"
	OutcomeVoid      = "void"
	OutcomeCleared   = "cleared"
)

// Pick kinds
const (
	KindPrediction = "prediction"
	KindScorecard  = "scorecard"
)

// Login kinds and statuses
const (
	KindTelegram  = "telegram"
	KindAdmin     = "admin"
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// UnmatchedRoute labels requests that did not match a registered route
const UnmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ResolutionLatencyBuckets covers a single fight's grading transaction
var ResolutionLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5}
