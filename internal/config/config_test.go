package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{"API_URL", "API_TIMEOUT", "LOG_LEVEL", "APP_ENV", "DASHBOARD_PORT", "NOTIFICATION_BUFFER", "REFRESH_INTERVAL"}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Zero(t, cfg.APITimeout)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 100, cfg.NotificationBuffer)
	assert.True(t, cfg.Development())
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_URL", "https://api.example.com")
	t.Setenv("API_TIMEOUT", "1500")
	t.Setenv("APP_ENV", "production")
	t.Setenv("NOTIFICATION_BUFFER", "10")
	t.Setenv("REFRESH_INTERVAL", "2m")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", cfg.APIURL)
	assert.Equal(t, 1500*time.Millisecond, cfg.APITimeout)
	assert.False(t, cfg.Development())
	assert.Equal(t, 10, cfg.NotificationBuffer)
	assert.Equal(t, 2*time.Minute, cfg.RefreshInterval)

	t.Setenv("API_TIMEOUT", "5s")
	cfg, err = FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.APITimeout)
}

func TestFromEnv_Invalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_TIMEOUT", "soon")
	_, err := FromEnv()
	assert.ErrorContains(t, err, "API_TIMEOUT")

	clearEnv(t)
	t.Setenv("NOTIFICATION_BUFFER", "-1")
	_, err = FromEnv()
	assert.ErrorContains(t, err, "NOTIFICATION_BUFFER")
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("API_URL=http://backend:4000\nDASHBOARD_PORT=9090\n"), 0o600))

	cfg, err := Load(path, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "http://backend:4000", cfg.APIURL)
	assert.Equal(t, "9090", cfg.Port)
}
