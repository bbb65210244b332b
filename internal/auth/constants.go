package auth

import "time"

// Cookie and header names
const (
	CookieAdminSession  = "admin_session"
	HeaderAuthorization = "Authorization"
	BearerPrefix        = "Bearer "
)

// Defaults
const (
	DefaultTelegramMaxAge  = 24 * time.Hour
	DefaultTokenTTL        = 30 * 24 * time.Hour
	DefaultAdminSessionTTL = 24 * time.Hour
	MaxAdminSessions       = 1024
	SessionTokenBytes      = 32
)

// Client-facing error details
const (
	ErrMsgMissingToken   = "Not authenticated"
	ErrMsgInvalidToken   = "Invalid or expired token"
	ErrMsgAdminRequired  = "Admin authentication required"
	ErrMsgTooManyLogins  = "Too many login attempts, try again later"
	ErrMsgTelegramNoBot  = "telegram login is not configured"
	ErrMsgSignToken      = "failed to sign token: %w"
	ErrMsgSessionEntropy = "failed to generate session token: %w"
)

// Log messages
const (
	LogMsgTelegramDevHash  = "Telegram login accepted with development hash"
	LogMsgTokenRejected    = "Bearer token rejected"
	LogMsgAdminLogin       = "Admin logged in"
	LogMsgAdminLoginFailed = "Admin login failed"
	LogMsgAdminLogout      = "Admin logged out"
	LogMsgRateLimited      = "Login rate limit exceeded"
)
