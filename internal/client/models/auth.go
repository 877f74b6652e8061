package models

import "encoding/json"

// TokenPair is the short-lived access credential and the longer-lived
// refresh credential issued by the backend.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// AuthResponse is the body of a successful login. User is kept raw so it can
// be persisted exactly as the backend sent it.
type AuthResponse struct {
	TokenPair
	User json.RawMessage `json:"user"`
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the sign-up request body.
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
