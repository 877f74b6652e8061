// Package client contains the client-side building blocks that talk to the
// outside world: the storefront REST API and the local session database.
//
// # Overview
//
//  1. A transport-agnostic API contract (see the Client interface): Login,
//     Register, Refresh, product listing/detail, order history and Ping.
//  2. A concrete HTTP/JSON implementation (see HTTPClient) with per-request
//     timeouts, request ids, OpenTelemetry instrumentation and mapping of HTTP
//     status codes to sentinel errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) opening the
//     SQLite file and applying the embedded goose migrations.
//
// # Error Handling
//
// Conditions are exposed as sentinel errors matched with errors.Is:
// ErrUnavailable, ErrUnauthorized, ErrNotFound, ErrBadRequest, ErrServer.
// Non-2xx responses come back as *APIError, which wraps the sentinel and
// carries the backend's "detail"/"message" text for display.
package client
