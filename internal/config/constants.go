package config

import "time"

// Environment names
const (
	EnvironmentDev        = "dev"
	EnvironmentProduction = "prod"
)

// Defaults applied when a variable is unset or malformed
const (
	DefaultPort        = "8000"
	DefaultEnvironment = EnvironmentDev
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"

	DefaultDBMaxConns        = 10
	DefaultDBMaxConnIdle     = 5 * time.Minute
	DefaultDBMaxConnLifetime = time.Hour

	DefaultJWTSecret          = "change-me-in-production"
	DefaultJWTTTL             = 30 * 24 * time.Hour
	DefaultTelegramAuthMaxAge = 24 * time.Hour
	DefaultAdminUsername      = "admin"
	DefaultAdminPassword      = "admin"
	DefaultAdminSessionTTL    = 24 * time.Hour

	DefaultEventReconcileInterval = 10 * time.Minute
	DefaultUserCacheSize          = 1000
	DefaultUserCacheTTL           = 5 * time.Minute
)

// DefaultCORSAllowedOrigins covers the local frontend dev servers
var DefaultCORSAllowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
