package catalog

// Validation error details
const (
	ErrMsgInvalidSlug       = "slug %q may only contain lowercase letters, digits and dashes"
	ErrMsgEmptySlug         = "cannot derive a slug from name %q"
	ErrMsgInvalidCardType   = "card_type must be main or prelim"
	ErrMsgRoundsOutOfRange  = "rounds must be between %d and %d"
	ErrMsgSameFighter       = "a fighter cannot fight themselves"
	ErrMsgUnknownFighter    = "fighter %d does not exist"
	ErrMsgInvalidClock      = "%s must look like HH:MM"
	ErrMsgInvalidFighterIDs = "fighter ids must be positive"
)

// Log messages
const (
	LogMsgFighterSaved        = "Fighter saved"
	LogMsgFighterDeleted      = "Fighter deleted"
	LogMsgEventSaved          = "Event saved"
	LogMsgEventDeleted        = "Event deleted"
	LogMsgFightSaved          = "Fight saved"
	LogMsgFightDeleted        = "Fight deleted"
	LogMsgStatusRefreshFailed = "Failed to refresh event status"
	LogMsgEventImported       = "Scraped event imported"
)

// Field names used in validation messages
const (
	FieldTimeMSK       = "time_msk"
	FieldScheduledTime = "scheduled_time"
)
