// Package logging is the structured logger used by the storefront client.
// The CLI writes it to stderr so it never interleaves with REPL output.
package logging

import "context"

// Logger takes a context and alternating key/value args:
//
//	log.Info(ctx, "products loaded", "count", n, "demo", demo)
type Logger interface {
	// Debug is for per-request detail such as outbound HTTP calls.
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	// Warn marks a degraded path, e.g. serving demo products.
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger carrying the given pairs on every record.
	With(args ...any) Logger
}
