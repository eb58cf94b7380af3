package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "PORTFOLIO_CONTENT", "PORTFOLIO_STATIC_DIR", "PORTFOLIO_DB_PATH", "PORTFOLIO_RETENTION",
		"PORTFOLIO_TRACKING", "SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASS", "TO_EMAIL",
		"ADMIN_USERNAME", "ADMIN_PASSWORD",
	} {
		// Setenv restores the original value on cleanup.
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "./static", cfg.StaticDir)
	assert.Equal(t, "data/portfolio.db", cfg.DBPath)
	assert.True(t, cfg.TrackingEnabled())
	assert.Equal(t, 8760*time.Hour, cfg.Retention)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTP.Host)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Empty(t, cfg.Admin.Password)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("PORTFOLIO_CONTENT", "/etc/portfolio.yaml")
	t.Setenv("PORTFOLIO_RETENTION", "720h")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("SMTP_USER", "me@example.com")
	t.Setenv("ADMIN_PASSWORD", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "/etc/portfolio.yaml", cfg.ContentPath)
	assert.Equal(t, 720*time.Hour, cfg.Retention)
	assert.Equal(t, 2525, cfg.SMTP.Port)
	assert.Equal(t, "me@example.com", cfg.SMTP.User)
	assert.Equal(t, "s3cret", cfg.Admin.Password)
}

func TestLoad_TrackingDisabled(t *testing.T) {
	t.Setenv("PORTFOLIO_TRACKING", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.TrackingEnabled())
}

func TestLoad_BadPort(t *testing.T) {
	t.Setenv("SMTP_PORT", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}
