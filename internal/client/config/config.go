package config

import "time"

// Config holds runtime settings for the storefront CLI.
//
// Fields:
//   - APIBaseURL: scheme://host:port of the REST backend; also prefixes relative image paths.
//   - RequestTimeout: upper bound for a single API request.
//   - OnlineCheckInterval: how often the client probes backend reachability.
//   - DatabasePath: SQLite file holding the durable session record.
//   - DemoFallback: serve the built-in demo catalog when the backend cannot be reached.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL          string        `env:"API_BASE_URL"`
	RequestTimeout      time.Duration `env:"REQUEST_TIMEOUT"`
	OnlineCheckInterval time.Duration `env:"ONLINE_CHECK_INTERVAL"`
	DatabasePath        string        `env:"DATABASE_PATH"`
	DemoFallback        bool          `env:"DEMO_FALLBACK"`
	LogLevel            string        `env:"LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000"
	c.RequestTimeout = 10 * time.Second
	c.OnlineCheckInterval = 5 * time.Second
	c.DatabasePath = "storefront.db"
	c.DemoFallback = true
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a JSON file (if given), the environment (including a local .env file) and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	loadDotEnv(".env")
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	cfg.normalize()
	return cfg
}

// normalize replaces non-positive durations with the defaults. A zero
// interval would panic the online ticker and a zero timeout disables it.
func (c *Config) normalize() {
	var d Config
	d.LoadDefaults()
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = d.RequestTimeout
	}
	if c.OnlineCheckInterval <= 0 {
		c.OnlineCheckInterval = d.OnlineCheckInterval
	}
}
