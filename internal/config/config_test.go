package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("APP_ENV", "development")

	cfg, err := parse()
	require.NoError(t, err)

	assert.Equal(t, "OrderDesk", cfg.AppName)
	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, ":3001", cfg.Address())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.ShutdownPeriod)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 24*time.Hour, cfg.IdempotencyTTL)
	assert.Zero(t, cfg.LoginRateLimit)
	assert.False(t, cfg.AutoMigrate)
	assert.True(t, cfg.IsDev())
}

func TestParseRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("APP_ENV", "development")

	_, err := parse()
	require.Error(t, err)
}

func TestParseRequiresDatabaseOutsideDev(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_URL", "")

	_, err := parse()
	require.Error(t, err)

	t.Setenv("DATABASE_URL", "postgres://localhost/orderdesk")
	cfg, err := parse()
	require.NoError(t, err)
	assert.False(t, cfg.IsDev())
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("APP_ENV", "local")
	t.Setenv("PORT", ":9000")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("REQUEST_TIMEOUT", "3s")
	t.Setenv("LOGIN_RATE_LIMIT", "5")

	cfg, err := parse()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Address())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 5, cfg.LoginRateLimit)
}

func TestParseRejectsNegativeRateLimit(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("APP_ENV", "development")
	t.Setenv("LOGIN_RATE_LIMIT", "-1")

	_, err := parse()
	require.Error(t, err)
}
