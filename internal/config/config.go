package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	Environment string
	LogLevel    string
	LogFormat   string

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBSSLMode         string
	DBMaxConns        int
	DBMaxConnIdle     time.Duration
	DBMaxConnLifetime time.Duration
	DBAutoMigrate     bool

	JWTSecret          string
	JWTTTL             time.Duration
	TelegramBotToken   string
	TelegramDevHash    string
	TelegramAuthMaxAge time.Duration
	AdminUsername      string
	AdminPassword      string
	AdminSessionTTL    time.Duration

	CORSAllowedOrigins []string
	TrustedProxies     []string

	EventReconcileInterval time.Duration
	UserCacheSize          int
	UserCacheTTL           time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment: strings.ToLower(getEnv("ENVIRONMENT", DefaultEnvironment)),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "fightpicks"),
		DBSSLMode:         getEnv("DB_SSLMODE", "disable"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdle:     getEnvAsDuration("DB_MAX_CONN_IDLE", DefaultDBMaxConnIdle),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),
		DBAutoMigrate:     getEnvAsBool("DB_AUTO_MIGRATE", true),

		JWTSecret:          getEnv("JWT_SECRET", DefaultJWTSecret),
		JWTTTL:             getEnvAsDuration("JWT_TTL", DefaultJWTTTL),
		TelegramBotToken:   getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramDevHash:    getEnv("TELEGRAM_DEV_HASH", ""),
		TelegramAuthMaxAge: getEnvAsDuration("TELEGRAM_AUTH_MAX_AGE", DefaultTelegramAuthMaxAge),
		AdminUsername:      getEnv("ADMIN_USERNAME", DefaultAdminUsername),
		AdminPassword:      getEnv("ADMIN_PASSWORD", DefaultAdminPassword),
		AdminSessionTTL:    getEnvAsDuration("ADMIN_SESSION_TTL", DefaultAdminSessionTTL),

		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", DefaultCORSAllowedOrigins),
		TrustedProxies:     getEnvAsList("TRUSTED_PROXIES", nil),

		EventReconcileInterval: getEnvAsDuration("EVENT_RECONCILE_INTERVAL", DefaultEventReconcileInterval),
		UserCacheSize:          getEnvAsInt("USER_CACHE_SIZE", DefaultUserCacheSize),
		UserCacheTTL:           getEnvAsDuration("USER_CACHE_TTL", DefaultUserCacheTTL),
	}

	port, err := strconv.Atoi(getEnv("PORT", DefaultPort))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.IsProduction() {
		if cfg.JWTSecret == DefaultJWTSecret {
			return nil, fmt.Errorf("JWT_SECRET must be set in %s", EnvironmentProduction)
		}
		if cfg.AdminPassword == DefaultAdminPassword {
			return nil, fmt.Errorf("ADMIN_PASSWORD must be set in %s", EnvironmentProduction)
		}
	}

	return cfg, nil
}

// IsProduction reports whether secure cookies and strict secrets apply
func (c *Config) IsProduction() bool {
	return c.Environment == EnvironmentProduction
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
		c.DBSSLMode,
	)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt falls back to the default when the value is missing or malformed
func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsDuration accepts Go duration strings such as "10m" or "720h"
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsList splits a comma separated value, dropping blanks
func getEnvAsList(key string, defaultValue []string) []string {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
