package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/glowcart/internal/flagx"
)

var knownFlags = []string{"-a", "-t", "-i", "-d", "-demo", "-l"}

// parseFlags populates Config fields from command-line flags. os.Args is
// filtered through flagx.FilterArgs first so -c/-config (handled by
// parseJson) do not trip the parser. Parse errors panic.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], knownFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the storefront API")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local session database")
	fs.BoolVar(&cfg.DemoFallback, "demo", cfg.DemoFallback, "use demo products when the API is unreachable")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// Durations from JSON or env may be sub-second; keep them unless the
	// flag was given explicitly.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
		case "i":
			cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
		}
	})
}
