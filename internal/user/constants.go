package user

import "time"

// ============================================================================
// Cache Configuration
// ============================================================================

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// DefaultCacheSize is the default maximum number of cache entries
const DefaultCacheSize = 1000

// DefaultCacheTTL is the default time-to-live for cache entries
const DefaultCacheTTL = 5 * time.Minute

// ============================================================================
// Messages
// ============================================================================

// Log messages
const (
	LogMsgLoginSucceeded = "Telegram login succeeded"
	LogMsgLoginRejected  = "Telegram login rejected"
	LogMsgCacheHit       = "User cache hit"
)

// Error wrapping messages
const (
	ErrMsgUpsertUser = "failed to save telegram user: %w"
	ErrMsgIssueToken = "failed to issue access token: %w"
)
