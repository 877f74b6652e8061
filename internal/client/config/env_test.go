package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_OverridesOnlySetVariables(t *testing.T) {
	t.Setenv(EnvPrefix+"API_BASE_URL", "http://env:8000")
	t.Setenv(EnvPrefix+"REQUEST_TIMEOUT", "750ms")
	t.Setenv(EnvPrefix+"DEMO_FALLBACK", "false")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "http://env:8000", cfg.APIBaseURL)
	assert.Equal(t, 750*time.Millisecond, cfg.RequestTimeout)
	assert.False(t, cfg.DemoFallback)
	assert.Equal(t, "storefront.db", cfg.DatabasePath)
	assert.Equal(t, 5*time.Second, cfg.OnlineCheckInterval)
}

func TestParseEnv_BadValuePanics(t *testing.T) {
	t.Setenv(EnvPrefix+"REQUEST_TIMEOUT", "forever")

	cfg := &Config{}
	require.Panics(t, func() { parseEnv(cfg) })
}

func TestLoadDotEnv_DoesNotOverrideProcessEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("GLOWCART_LOG_LEVEL=debug\nGLOWCART_DATABASE_PATH=dotenv.db\n"), 0o600))

	t.Setenv(EnvPrefix+"LOG_LEVEL", "error")
	// t.Setenv registers cleanup restoring the (unset) original value.
	t.Setenv(EnvPrefix+"DATABASE_PATH", "")
	require.NoError(t, os.Unsetenv(EnvPrefix+"DATABASE_PATH"))

	loadDotEnv(path)

	assert.Equal(t, "error", os.Getenv(EnvPrefix+"LOG_LEVEL"))
	assert.Equal(t, "dotenv.db", os.Getenv(EnvPrefix+"DATABASE_PATH"))
}

func TestLoadDotEnv_MissingFileIsFine(t *testing.T) {
	require.NotPanics(t, func() { loadDotEnv(filepath.Join(t.TempDir(), ".env")) })
}
