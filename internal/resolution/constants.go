package resolution

// Validation error details
const (
	ErrMsgInvalidWinner         = "winner must be one of fighter1, fighter2, draw, no_contest"
	ErrMsgInvalidMethod         = "method must be one of ko_tko, submission, decision, dq"
	ErrMsgFinishRoundOutOfRange = "finish_round must be between 1 and %d"
	ErrMsgInvalidFinishTime     = "finish_time must look like M:SS or MM:SS"
	ErrMsgJudgeCardCount        = "a decision requires exactly %d official scorecards, got %d"
	ErrMsgTooManyJudgeCards     = "at most %d official scorecards are allowed"
	ErrMsgJudgeNameRequired     = "official scorecard %d: judge_name is required"
	ErrMsgJudgeRoundCount       = "official scorecard %d: expected %d rounds, got %d"
	ErrMsgJudgeRoundOutOfRange  = "official scorecard %d: round_number %d is outside 1..%d"
	ErrMsgJudgeRoundDuplicate   = "official scorecard %d: round %d is scored twice"
	ErrMsgJudgeScoreOutOfRange  = "official scorecard %d: round %d scores must be between %d and %d"
)

// Error wrapping messages
const (
	ErrMsgFailedToBegin   = "failed to begin resolution"
	ErrMsgFailedToGrade   = "failed to grade picks"
	ErrMsgFailedToCommit  = "failed to commit resolution"
	ErrMsgFailedToClosure = "failed to update event status"
)

// Log messages
const (
	LogMsgResultRecorded     = "Fight result recorded"
	LogMsgResultUpdated      = "Fight result updated"
	LogMsgResultDeleted      = "Fight result deleted"
	LogMsgFightRegraded      = "Fight picks regraded"
	LogMsgEventStatusChanged = "Event status changed"
	LogMsgEventsReconciled   = "Event statuses reconciled"
	LogMsgResolutionFailed   = "Resolution failed"
	LogMsgReconcileFailed    = "Failed to reconcile event"
)
