package scorecard

// Validation error details
const (
	ErrMsgInvalidFightID  = "fight_id must be positive"
	ErrMsgRoundCount      = "this fight is scheduled for %d rounds, got %d round scores"
	ErrMsgRoundOutOfRange = "round_number %d is outside 1..%d"
	ErrMsgRoundDuplicate  = "round %d is scored twice"
	ErrMsgScoreOutOfRange = "round %d scores must be between %d and %d"
)

// Log messages
const (
	LogMsgScorecardCreated = "Scorecard created"
	LogMsgUserLookupFailed = "Failed to load scorecard author"
)
