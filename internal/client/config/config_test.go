package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8000", c.APIBaseURL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, 5*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, "storefront.db", c.DatabasePath)
	assert.True(t, c.DemoFallback)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_UsesDefaultsWithoutOverrides(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"glowcart"}
	t.Chdir(t.TempDir())

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://127.0.0.1:8000", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_FlagsBeatEnvBeatJSON(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	t.Chdir(t.TempDir())

	path := writeTempJSON(t, "", "", map[string]any{
		"api_base_url":  "http://json:1",
		"database_path": "json.db",
		"log_level":     "warn",
	})
	t.Setenv(EnvPrefix+"DATABASE_PATH", "env.db")
	t.Setenv(EnvPrefix+"LOG_LEVEL", "error")

	os.Args = []string{"glowcart", "-c", path, "-l", "debug"}

	cfg := LoadConfig()

	assert.Equal(t, "http://json:1", cfg.APIBaseURL)
	assert.Equal(t, "env.db", cfg.DatabasePath)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_KeepsSubSecondDurations(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"glowcart"}
	t.Chdir(t.TempDir())
	t.Setenv(EnvPrefix+"ONLINE_CHECK_INTERVAL", "500ms")
	t.Setenv(EnvPrefix+"REQUEST_TIMEOUT", "1500ms")

	cfg := LoadConfig()

	assert.Equal(t, 500*time.Millisecond, cfg.OnlineCheckInterval)
	assert.Equal(t, 1500*time.Millisecond, cfg.RequestTimeout)
	require.NotPanics(t, func() { time.NewTicker(cfg.OnlineCheckInterval).Stop() })
}

func TestLoadConfig_NonPositiveDurationsFallBackToDefaults(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{name: "zero from env", env: map[string]string{"ONLINE_CHECK_INTERVAL": "0s", "REQUEST_TIMEOUT": "0s"}},
		{name: "negative from env", env: map[string]string{"ONLINE_CHECK_INTERVAL": "-1s", "REQUEST_TIMEOUT": "-5s"}},
		{name: "zero from flags", args: []string{"-t", "0", "-i", "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origArgs := os.Args
			t.Cleanup(func() { os.Args = origArgs })
			os.Args = append([]string{"glowcart"}, tt.args...)
			t.Chdir(t.TempDir())
			for k, v := range tt.env {
				t.Setenv(EnvPrefix+k, v)
			}

			cfg := LoadConfig()

			assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
			assert.Equal(t, 5*time.Second, cfg.OnlineCheckInterval)
		})
	}
}
