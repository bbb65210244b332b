package prediction

// Validation error details
const (
	ErrMsgInvalidWinner     = "predicted_winner must be fighter1 or fighter2"
	ErrMsgInvalidMethod     = "win_method must be one of ko_tko, submission, decision, dq"
	ErrMsgInvalidConfidence = "confidence must be between %d and %d"
	ErrMsgInvalidFightID    = "fight_id must be positive"
)

// Log messages
const (
	LogMsgPredictionCreated = "Prediction created"
	LogMsgUserLookupFailed  = "Failed to load prediction author"
)
