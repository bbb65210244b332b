package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvVars = []string{
	"PORT", "ENVIRONMENT", "LOG_LEVEL", "LOG_FORMAT",
	"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME", "DB_SSLMODE",
	"DB_MAX_CONNS", "DB_MAX_CONN_IDLE", "DB_MAX_CONN_LIFETIME", "DB_AUTO_MIGRATE",
	"JWT_SECRET", "JWT_TTL", "TELEGRAM_BOT_TOKEN", "TELEGRAM_DEV_HASH", "TELEGRAM_AUTH_MAX_AGE",
	"ADMIN_USERNAME", "ADMIN_PASSWORD", "ADMIN_SESSION_TTL",
	"CORS_ALLOWED_ORIGINS", "TRUSTED_PROXIES",
	"EVENT_RECONCILE_INTERVAL", "USER_CACHE_SIZE", "USER_CACHE_TTL",
}

// clearEnvVars unsets every variable Load reads, restoring them after the test
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range configEnvVars {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8000, cfg.Port, "Should use default port")
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, "postgres", cfg.DBUser)
		assert.Equal(t, "localhost", cfg.DBHost)
		assert.Equal(t, "fightpicks", cfg.DBName)
		assert.True(t, cfg.DBAutoMigrate)
		assert.Equal(t, 30*24*time.Hour, cfg.JWTTTL)
		assert.Equal(t, 24*time.Hour, cfg.TelegramAuthMaxAge)
		assert.Equal(t, 24*time.Hour, cfg.AdminSessionTTL)
		assert.Equal(t, 10*time.Minute, cfg.EventReconcileInterval)
		assert.Equal(t, DefaultCORSAllowedOrigins, cfg.CORSAllowedOrigins)
		assert.Empty(t, cfg.TrustedProxies)
		assert.False(t, cfg.IsProduction())
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)

		t.Setenv("PORT", "3000")
		t.Setenv("LOG_LEVEL", "DEBUG")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("ENVIRONMENT", "staging")
		t.Setenv("DB_USER", "customuser")
		t.Setenv("DB_PASSWORD", "custompass")
		t.Setenv("DB_HOST", "db.example.com")
		t.Setenv("DB_PORT", "5433")
		t.Setenv("DB_NAME", "customdb")
		t.Setenv("DB_AUTO_MIGRATE", "false")
		t.Setenv("JWT_TTL", "720h")
		t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://picks.example.com, https://admin.example.com,")
		t.Setenv("TRUSTED_PROXIES", "10.0.0.1")
		t.Setenv("EVENT_RECONCILE_INTERVAL", "0s")
		t.Setenv("USER_CACHE_SIZE", "50")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "staging", cfg.Environment)
		assert.Equal(t, "customuser", cfg.DBUser)
		assert.Equal(t, "custompass", cfg.DBPassword)
		assert.Equal(t, "db.example.com", cfg.DBHost)
		assert.Equal(t, "5433", cfg.DBPort)
		assert.Equal(t, "customdb", cfg.DBName)
		assert.False(t, cfg.DBAutoMigrate)
		assert.Equal(t, 720*time.Hour, cfg.JWTTTL)
		assert.Equal(t, "123:abc", cfg.TelegramBotToken)
		assert.Equal(t, []string{"https://picks.example.com", "https://admin.example.com"}, cfg.CORSAllowedOrigins)
		assert.Equal(t, []string{"10.0.0.1"}, cfg.TrustedProxies)
		assert.Zero(t, cfg.EventReconcileInterval, "zero disables the reconciler")
		assert.Equal(t, 50, cfg.UserCacheSize)
	})

	t.Run("returns error for invalid PORT", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "not-a-number")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "invalid PORT")
	})

	t.Run("production refuses default secrets", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("ENVIRONMENT", "prod")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET")

		t.Setenv("JWT_SECRET", "a-real-secret")
		_, err = Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ADMIN_PASSWORD")

		t.Setenv("ADMIN_PASSWORD", "correct horse")
		cfg, err := Load()
		require.NoError(t, err)
		assert.True(t, cfg.IsProduction())
	})
}

func TestGetDBConnString(t *testing.T) {
	cfg := &Config{
		DBUser:     "fp",
		DBPassword: "p@ss",
		DBHost:     "db",
		DBPort:     "5432",
		DBName:     "fightpicks",
		DBSSLMode:  "require",
	}
	assert.Equal(t, "postgres://fp:p@ss@db:5432/fightpicks?sslmode=require", cfg.GetDBConnString())
}
