package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation     = "23505"
	// PgErrorCodeForeignKeyViolation is raised when a referenced row is missing
	PgErrorCodeForeignKeyViolation = "23503"
	// PgErrorCodeCheckViolation is raised when a CHECK constraint fails
	PgErrorCodeCheckViolation      = "23514"
)

// Constraint names referenced by error translation
const (
	ConstraintFightEvent       = "fights_event_id_fkey"
	ConstraintFightFighter1    = "fights_fighter1_id_fkey"
	ConstraintFightFighter2    = "fights_fighter2_id_fkey"
	ConstraintPredictionFight  = "predictions_fight_id_fkey"
	ConstraintPredictionUser   = "predictions_user_id_fkey"
	ConstraintScorecardFight   = "scorecards_fight_id_fkey"
	ConstraintScorecardUser    = "scorecards_user_id_fkey"
	ConstraintFightResultFight = "fight_results_fight_id_fkey"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Catalog Operations
const (
	ErrMsgFailedToGetFighter    = "failed to get fighter"
	ErrMsgFailedToListFighters  = "failed to list fighters"
	ErrMsgFailedToSaveFighter   = "failed to save fighter"
	ErrMsgFailedToDeleteFighter = "failed to delete fighter"
	ErrMsgFailedToGetEvent      = "failed to get event"
	ErrMsgFailedToListEvents    = "failed to list events"
	ErrMsgFailedToSaveEvent     = "failed to save event"
	ErrMsgFailedToUpdateEvent   = "failed to update event"
	ErrMsgFailedToDeleteEvent   = "failed to delete event"
	ErrMsgFailedToListOrgs      = "failed to list organizations"
	ErrMsgFailedToGetFight      = "failed to get fight"
	ErrMsgFailedToListFights    = "failed to list fights"
	ErrMsgFailedToSaveFight     = "failed to save fight"
	ErrMsgFailedToDeleteFight   = "failed to delete fight"
	ErrMsgFightMatchupExists    = "fight between these fighters already exists on this event"
)

// Error Messages - Pick Operations
const (
	ErrMsgFailedToCreatePrediction = "failed to create prediction"
	ErrMsgFailedToGetPrediction    = "failed to get prediction"
	ErrMsgFailedToListPredictions  = "failed to list predictions"
	ErrMsgFailedToUpdatePrediction = "failed to update prediction resolution"
	ErrMsgFailedToCreateScorecard  = "failed to create scorecard"
	ErrMsgFailedToCreateRoundScore = "failed to create round score"
	ErrMsgFailedToGetScorecard     = "failed to get scorecard"
	ErrMsgFailedToListScorecards   = "failed to list scorecards"
	ErrMsgFailedToListRoundScores  = "failed to list round scores"
	ErrMsgFailedToUpdateScorecard  = "failed to update scorecard resolution"
	ErrMsgFailedToUpdateRoundScore = "failed to update round score resolution"
	ErrMsgFailedToGetSummary       = "failed to get user summary"
)

// Error Messages - Result Operations
const (
	ErrMsgFailedToLockFight         = "failed to lock fight"
	ErrMsgFailedToLockEvent         = "failed to lock event"
	ErrMsgFailedToGetResult         = "failed to get fight result"
	ErrMsgFailedToListResults       = "failed to list fight results"
	ErrMsgFailedToSaveResult        = "failed to save fight result"
	ErrMsgFailedToDeleteResult      = "failed to delete fight result"
	ErrMsgFailedToMarkResolved      = "failed to mark fight result resolved"
	ErrMsgFailedToSaveOfficialCard  = "failed to save official scorecard"
	ErrMsgFailedToListOfficialCards = "failed to list official scorecards"
	ErrMsgFailedToGetEventClosure   = "failed to get event closure"
	ErrMsgFailedToSetEventUpcoming  = "failed to update event status"
	ErrMsgFailedToListEventIDs      = "failed to list events with fights"
)

// Error Messages - User Operations
const (
	ErrMsgFailedToUpsertUser = "failed to upsert user"
	ErrMsgFailedToGetUser    = "failed to get user"
)
