// Package session holds who is signed in to the storefront.
//
// A Session starts in the Checking state, restores a previously persisted
// identity in Initialize and afterwards moves between LoggedOut and LoggedIn
// through Login, Register and Logout. The access token, the refresh token and
// the serialized user record live under three durable storage keys that are
// always written and removed together, and this package is the only writer
// of those keys.
//
// Consumers observe changes through Subscribe; there is no package-level
// instance, the application constructs one Session and passes it around.
package session
