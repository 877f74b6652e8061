// Package config loads runtime configuration for the storefront CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables prefixed with GLOWCART_ (see parseEnv). A .env file
//     in the working directory is loaded first but never overrides variables
//     already set in the process environment.
//  4. Command-line flags (see parseFlags), which override everything else.
//
// Supported flags
//
//	-a string   base URL of the REST backend
//	-t int      request timeout (seconds)
//	-i int      online status check interval (seconds)
//	-d string   path of the SQLite session database
//	-demo bool  fall back to the demo catalog when the backend is down
//	-l string   log level
//
// # JSON schema
//
// Intervals use timex.Duration, so values can be strings like "3s" or integer
// nanoseconds:
//
//	{
//	  "api_base_url": "http://127.0.0.1:8000",
//	  "request_timeout": "10s",
//	  "online_check_interval": "5s",
//	  "database_path": "storefront.db",
//	  "demo_fallback": true,
//	  "log_level": "info"
//	}
package config
