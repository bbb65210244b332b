package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest      = "Invalid request body"
	ErrMsgValidationFailed    = "Validation failed"
	ErrMsgInternalServerError = "Internal server error"
	ErrMsgInvalidPathParam    = "%s must be a positive integer"
	ErrMsgInvalidQueryParam   = "%s has an invalid value"
	ErrMsgNotAuthenticated    = "Not authenticated"
	ErrMsgInvalidCredentials  = "Incorrect username or password"
	ErrMsgInvalidTelegram     = "Invalid Telegram authentication"
	ErrMsgTelegramExpired     = "Telegram authentication has expired, please log in again"
	ErrMsgRequestTooLarge     = "Request body too large"
)

// Validation field messages
const (
	FieldMsgRequired = "This field is required"
	FieldMsgInvalid  = "Invalid value"
	FieldMsgMin      = "Must be at least %s"
	FieldMsgMax      = "Must be at most %s"
	FieldMsgMinItems = "Must contain at least %s items"
	FieldMsgMaxItems = "Must contain at most %s items"
	FieldMsgOneOf    = "Must be one of: %s"
	FieldMsgClock    = "Must be a time of day in HH:MM format"
	FieldMsgFinish   = "Must look like M:SS"
)

// Success messages for API responses
const (
	MsgLoggedIn  = "Logged in"
	MsgLoggedOut = "Logged out"
	MsgDeleted   = "Deleted"

	MsgTokenDiscard = "Logged out successfully. Please discard your token."
)

// Log messages
const (
	LogMsgDecodeFailed     = "Failed to decode request body"
	LogMsgRequestInvalid   = "Request failed validation"
	LogMsgUnhandledError   = "Request failed"
	LogMsgEncodeFailed     = "Failed to encode JSON response"
	LogMsgWriteFailed      = "Failed to write response buffer"
	LogMsgReadinessFailed  = "Readiness check failed"
	LogMsgAdminLoginFailed = "Admin login failed"
	LogMsgAdminLoggedIn    = "Admin logged in"
	LogMsgAdminLoggedOut   = "Admin logged out"
)

// Path and query parameter names
const (
	ParamID           = "id"
	ParamSlug         = "slug"
	QueryUpcomingOnly = "upcoming_only"
	QueryOrganization = "organization"
	QueryLimit        = "limit"
	QuerySkip         = "skip"
	QuerySearch       = "search"
	QueryEventID      = "event_id"
)
