package domain

// ResolutionAction names what triggered a resolution pass.
type ResolutionAction string

const (
	ResolutionActionCreate  ResolutionAction = "create"
	ResolutionActionUpdate  ResolutionAction = "update"
	ResolutionActionDelete  ResolutionAction = "delete"
	ResolutionActionRegrade ResolutionAction = "regrade"
)

// ResolutionSummary describes what one resolution pass changed. Cleared is
// set when the fight had no result and every pick was un-resolved.
type ResolutionSummary struct {
	Action               ResolutionAction `json:"action"`
	FightID              int              `json:"fight_id"`
	EventID              int              `json:"event_id"`
	Cleared              bool             `json:"cleared"`
	PredictionsGraded    int              `json:"predictions_graded"`
	PredictionsCorrect   int              `json:"predictions_correct"`
	PredictionsIncorrect int              `json:"predictions_incorrect"`
	PredictionsVoid      int              `json:"predictions_void"`
	ScorecardsGraded     int              `json:"scorecards_graded"`
	RoundsGraded         int              `json:"rounds_graded"`
	RoundsCorrect        int              `json:"rounds_correct"`
	EventUpcoming        bool             `json:"event_upcoming"`
	EventStatusChanged   bool             `json:"event_status_changed"`
}
