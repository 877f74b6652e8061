// Package common contains constants and small helpers shared by the
// storefront client packages.
package common

// Durable storage keys of the session record. The three values are written
// and removed together; only the session package touches them.
const (
	StorageKeyAccessToken  = "access_token"
	StorageKeyRefreshToken = "refresh_token"
	StorageKeyUser         = "user"
)

// SessionStorageKeys lists the session keys in the order they are written.
var SessionStorageKeys = []string{StorageKeyAccessToken, StorageKeyRefreshToken, StorageKeyUser}

// HTTP headers attached to outbound API requests.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
)
