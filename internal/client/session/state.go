package session

import "github.com/dmitrijs2005/glowcart/internal/client/models"

// Status is the phase of the session lifecycle.
type Status int

const (
	// Checking lasts from construction until Initialize has read storage.
	Checking Status = iota
	LoggedOut
	LoggedIn
)

func (s Status) String() string {
	switch s {
	case Checking:
		return "checking"
	case LoggedOut:
		return "logged out"
	case LoggedIn:
		return "logged in"
	default:
		return "unknown"
	}
}

// State is an immutable snapshot handed to readers and subscribers. User is
// set only when Status is LoggedIn.
type State struct {
	Status Status
	User   *models.Identity
}

func (s State) IsAuthenticated() bool {
	return s.Status == LoggedIn
}

func (s State) Loading() bool {
	return s.Status == Checking
}

// Result is the outcome of Login and Register. Reason is a user-facing
// message and is empty on success.
type Result struct {
	Success bool
	Reason  string
}

func failed(reason string) Result {
	return Result{Reason: reason}
}
