package stats

// Rounding precision of the published figures
const (
	RoundAveragePrecision = 2
	TotalAveragePrecision = 1
	PercentagePrecision   = 1
	AccuracyPrecision     = 4
)

// Log messages
const (
	LogMsgFightStatsComputed = "Fight stats computed"
	LogMsgUserStatsComputed  = "User stats computed"
)

// Error wrapping messages
const (
	ErrMsgLoadPredictions = "failed to load predictions: %w"
	ErrMsgLoadScorecards  = "failed to load scorecards: %w"
	ErrMsgLoadSummary     = "failed to load user summary: %w"
)
