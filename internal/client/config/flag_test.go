package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-a", "http://shop:9000", "-t", "3", "-i", "10", "-d", "/tmp/s.db", "-demo=false", "-l", "debug"},
			expected: &Config{
				APIBaseURL:          "http://shop:9000",
				RequestTimeout:      3 * time.Second,
				OnlineCheckInterval: 10 * time.Second,
				DatabasePath:        "/tmp/s.db",
				DemoFallback:        false,
				LogLevel:            "debug",
			},
		},
		{
			name: "config flag is ignored here",
			args: []string{"cmd", "-c", "cfg.json", "-a", "http://shop:9000"},
			expected: &Config{
				APIBaseURL:          "http://shop:9000",
				RequestTimeout:      10 * time.Second,
				OnlineCheckInterval: 5 * time.Second,
				DatabasePath:        "storefront.db",
				DemoFallback:        true,
				LogLevel:            "info",
			},
		},
		{name: "incorrect timeout", args: []string{"cmd", "-t", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origArgs := os.Args
			t.Cleanup(func() { os.Args = origArgs })
			os.Args = tt.args

			cfg := &Config{}
			cfg.LoadDefaults()

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg) })
				return
			}
			require.NotPanics(t, func() { parseFlags(cfg) })
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}

func TestParseFlags_KeepsDurationsWithoutDurationFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cmd", "-l", "debug"}

	cfg := &Config{RequestTimeout: 1500 * time.Millisecond, OnlineCheckInterval: 500 * time.Millisecond}
	parseFlags(cfg)

	assert.Equal(t, 1500*time.Millisecond, cfg.RequestTimeout)
	assert.Equal(t, 500*time.Millisecond, cfg.OnlineCheckInterval)
}
