package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Lookup errors
	ErrMsgNotFound           = "not found"
	ErrMsgFightNotFound      = "fight not found"
	ErrMsgEventNotFound      = "event not found"
	ErrMsgFighterNotFound    = "fighter not found"
	ErrMsgUserNotFound       = "user not found"
	ErrMsgResultNotFound     = "fight result not found"
	ErrMsgPredictionNotFound = "prediction not found"
	ErrMsgScorecardNotFound  = "scorecard not found"

	// Conflict errors
	ErrMsgConflict         = "conflict"
	ErrMsgPredictionExists = "you have already made a prediction for this fight"
	ErrMsgScorecardExists  = "you have already submitted a scorecard for this fight"
	ErrMsgResultExists     = "result already exists for this fight, use PUT to update"
	ErrMsgSlugTaken        = "event slug or url already in use"
	ErrMsgFightResolved    = "this fight already has a result, picks are closed"

	// Validation errors
	ErrMsgValidation = "validation failed"

	// Auth errors
	ErrMsgUnauthorized        = "unauthorized"
	ErrMsgInvalidTelegramHash = "invalid telegram authentication"
	ErrMsgTelegramAuthExpired = "telegram authentication data is too old"
	ErrMsgInvalidCredentials  = "invalid username or password"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
	ErrMsgTxClosed      = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrNotFound   = errors.New(ErrMsgNotFound)
	ErrConflict   = errors.New(ErrMsgConflict)
	ErrValidation = errors.New(ErrMsgValidation)

	ErrUnauthorized        = errors.New(ErrMsgUnauthorized)
	ErrInvalidTelegramHash = errors.New(ErrMsgInvalidTelegramHash)
	ErrTelegramAuthExpired = errors.New(ErrMsgTelegramAuthExpired)
	ErrInvalidCredentials  = errors.New(ErrMsgInvalidCredentials)

	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)

// Specific lookup and conflict errors wrap the generic kinds so callers can
// match either the precise error or the category.
var (
	ErrFightNotFound      = wrapKind(ErrNotFound, ErrMsgFightNotFound)
	ErrEventNotFound      = wrapKind(ErrNotFound, ErrMsgEventNotFound)
	ErrFighterNotFound    = wrapKind(ErrNotFound, ErrMsgFighterNotFound)
	ErrUserNotFound       = wrapKind(ErrNotFound, ErrMsgUserNotFound)
	ErrResultNotFound     = wrapKind(ErrNotFound, ErrMsgResultNotFound)
	ErrPredictionNotFound = wrapKind(ErrNotFound, ErrMsgPredictionNotFound)
	ErrScorecardNotFound  = wrapKind(ErrNotFound, ErrMsgScorecardNotFound)

	ErrPredictionExists = wrapKind(ErrConflict, ErrMsgPredictionExists)
	ErrScorecardExists  = wrapKind(ErrConflict, ErrMsgScorecardExists)
	ErrResultExists     = wrapKind(ErrConflict, ErrMsgResultExists)
	ErrSlugTaken        = wrapKind(ErrConflict, ErrMsgSlugTaken)
	ErrFightResolved    = wrapKind(ErrConflict, ErrMsgFightResolved)
)

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

func wrapKind(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}
