package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func setRequired(t *testing.T) {
	t.Helper()
	for _, envVar := range RequiredEnvVars {
		t.Setenv(envVar, "test_value")
	}
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
}

func TestValidateEnv_MissingVersion(t *testing.T) {
	unsetEnv(t, "ENV_SCHEMA_VERSION")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION is not set")
}

func TestValidateEnv_VersionMismatch(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", "0.9")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION mismatch")
	assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
}

func TestValidateEnv_MissingRequired(t *testing.T) {
	setRequired(t)
	unsetEnv(t, "JWT_SECRET", "DB_HOST")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required environment variables")
	assert.Contains(t, err.Error(), "DB_HOST, JWT_SECRET")
}

func TestValidateEnvWithWarnings_InsecureDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_PASSWORD", "change_this_secure_password")
	t.Setenv("JWT_SECRET", DefaultJWTSecret)
	t.Setenv("ADMIN_PASSWORD", DefaultAdminPassword)
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	unsetEnv(t, "TELEGRAM_DEV_HASH")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err, "Should not error even with warnings")
	require.Len(t, warnings, 3)
	assert.Contains(t, warnings[0], "DB_PASSWORD")
	assert.Contains(t, warnings[1], "JWT_SECRET")
	assert.Contains(t, warnings[2], "ADMIN_PASSWORD")
}

func TestValidateEnvWithWarnings_Telegram(t *testing.T) {
	setRequired(t)
	unsetEnv(t, "TELEGRAM_BOT_TOKEN")
	t.Setenv("TELEGRAM_DEV_HASH", "letmein")
	t.Setenv("ENVIRONMENT", "prod")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "TELEGRAM_BOT_TOKEN")
	assert.Contains(t, warnings[1], "TELEGRAM_DEV_HASH")
}
