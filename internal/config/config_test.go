package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/test")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 72*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, "Europe/Berlin", cfg.Timezone)
	assert.False(t, cfg.IsProd())
}

func TestLoadMissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadJWTExpiry(t *testing.T) {
	t.Run("explicit value", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("JWT_EXPIRY_HOURS", "24")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	})

	t.Run("malformed value falls back to the default", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("JWT_EXPIRY_HOURS", "three days")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 72*time.Hour, cfg.JWTExpiry)
	})

	t.Run("negative value falls back to the default", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("JWT_EXPIRY_HOURS", "-1")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 72*time.Hour, cfg.JWTExpiry)
	})
}

func TestLocationFallback(t *testing.T) {
	cfg := &Config{Timezone: "Not/AZone"}
	assert.Equal(t, time.UTC, cfg.Location())
}
