package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/glowcart/internal/client/client"
	"github.com/dmitrijs2005/glowcart/internal/client/forms"
	"github.com/dmitrijs2005/glowcart/internal/client/models"
	"github.com/dmitrijs2005/glowcart/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/glowcart/internal/common"
	"github.com/dmitrijs2005/glowcart/internal/dbx"
	"github.com/dmitrijs2005/glowcart/internal/logging"
)

const (
	reasonLoginFailed           = "Login failed"
	reasonRegistrationFailed    = "Registration failed"
	reasonRegisteredLoginFailed = "Registration successful but login failed"
)

var (
	ErrNotLoggedIn    = errors.New("not logged in")
	ErrNoRefreshToken = errors.New("no refresh token stored")
)

// API is the part of the backend the session talks to.
type API interface {
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Register(ctx context.Context, r models.Registration) error
	Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error)
}

// Navigator returns the interface to its landing view after logout.
type Navigator interface {
	ResetToRoot()
}

type Option func(*Session)

func WithNavigator(n Navigator) Option {
	return func(s *Session) { s.nav = n }
}

func WithLogger(l logging.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithClock overrides the time source used for token expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

type Session struct {
	api       API
	db        *sql.DB
	validator *forms.Validator
	nav       Navigator
	log       logging.Logger
	now       func() time.Time

	mu     sync.Mutex
	state  State
	subs   map[int]func(State)
	nextID int
}

func New(api API, db *sql.DB, opts ...Option) *Session {
	s := &Session{
		api:       api,
		db:        db,
		validator: forms.NewValidator(),
		log:       logging.Discard(),
		now:       time.Now,
		state:     State{Status: Checking},
		subs:      make(map[int]func(State)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("component", "session")
	return s
}

// State returns the current snapshot.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn for every subsequent state change. The returned
// function removes the subscription.
func (s *Session) Subscribe(fn func(State)) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Session) setState(st State) {
	s.mu.Lock()
	s.state = st
	subs := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(st)
	}
}

// Initialize restores the session persisted by a previous run. A stored user
// record that cannot be parsed wipes the whole session record.
func (s *Session) Initialize(ctx context.Context) {
	repo := metadata.NewSQLiteRepository(s.db)

	access, err := repo.Get(ctx, common.StorageKeyAccessToken)
	if err != nil {
		s.log.Error(ctx, "read stored session", "error", err)
		s.setState(State{Status: LoggedOut})
		return
	}
	rawUser, err := repo.Get(ctx, common.StorageKeyUser)
	if err != nil {
		s.log.Error(ctx, "read stored session", "error", err)
		s.setState(State{Status: LoggedOut})
		return
	}

	if access == "" || rawUser == "" {
		s.setState(State{Status: LoggedOut})
		return
	}

	user, err := models.ParseIdentity([]byte(rawUser))
	if err != nil {
		s.log.Warn(ctx, "stored user record is corrupt, clearing session", "error", err)
		if err := s.clearStorage(ctx); err != nil {
			s.log.Error(ctx, "clear corrupt session", "error", err)
		}
		s.setState(State{Status: LoggedOut})
		return
	}

	s.log.Info(ctx, "session restored", "user", user.DisplayName())
	s.setState(State{Status: LoggedIn, User: user})
}

// Login authenticates against the backend and, on success, persists the
// session record before switching to LoggedIn. On failure the current
// session is left as it was.
func (s *Session) Login(ctx context.Context, email, password string) Result {
	detail, err := s.login(ctx, email, password)
	if err != nil {
		if detail == "" {
			detail = reasonLoginFailed
		}
		return failed(detail)
	}
	return Result{Success: true}
}

func (s *Session) login(ctx context.Context, email, password string) (string, error) {
	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		s.log.Warn(ctx, "login failed", "email", email, "error", err)
		return client.DetailOf(err), err
	}

	user, err := models.ParseIdentity(resp.User)
	if err != nil {
		s.log.Error(ctx, "login returned an unusable user record", "error", err)
		return "", err
	}

	err = s.writeStorage(ctx, map[string]string{
		common.StorageKeyAccessToken:  resp.Access,
		common.StorageKeyRefreshToken: resp.Refresh,
		common.StorageKeyUser:         string(resp.User),
	})
	if err != nil {
		s.log.Error(ctx, "persist session", "error", err)
		return "", err
	}

	s.log.Info(ctx, "logged in", "user", user.DisplayName())
	s.setState(State{Status: LoggedIn, User: user})
	return "", nil
}

// Register validates the form, creates the account and signs the new user
// in. A password mismatch is rejected without contacting the backend. Name
// and email are trimmed; passwords are used verbatim.
func (s *Session) Register(ctx context.Context, f forms.RegisterForm) Result {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)

	if err := s.validator.Register(f); err != nil {
		var ve *forms.ValidationError
		if errors.As(err, &ve) {
			return failed(ve.Message)
		}
		return failed(reasonRegistrationFailed)
	}

	err := s.api.Register(ctx, models.Registration{Name: f.Name, Email: f.Email, Password: f.Password})
	if err != nil {
		s.log.Warn(ctx, "registration failed", "email", f.Email, "error", err)
		msg := client.MessageOf(err)
		if msg == "" {
			msg = reasonRegistrationFailed
		}
		return failed(msg)
	}

	detail, err := s.login(ctx, f.Email, f.Password)
	if err != nil {
		if detail == "" {
			detail = reasonRegisteredLoginFailed
		}
		return failed(detail)
	}
	return Result{Success: true}
}

// Logout removes the session record and returns to LoggedOut. The state is
// reset even when storage cannot be cleared; that error is returned.
func (s *Session) Logout(ctx context.Context) error {
	err := s.clearStorage(ctx)
	if err != nil {
		s.log.Error(ctx, "clear session storage", "error", err)
	}

	s.setState(State{Status: LoggedOut})
	s.log.Info(ctx, "logged out")

	if s.nav != nil {
		s.nav.ResetToRoot()
	}
	return err
}

// Authorized runs fn with the current access token. An expired token, or an
// ErrUnauthorized from fn, triggers one refresh and one retry. A failed
// refresh is returned as is; the user stays signed in.
func (s *Session) Authorized(ctx context.Context, fn func(ctx context.Context, accessToken string) error) error {
	if !s.State().IsAuthenticated() {
		return ErrNotLoggedIn
	}

	repo := metadata.NewSQLiteRepository(s.db)
	access, err := repo.Get(ctx, common.StorageKeyAccessToken)
	if err != nil {
		return err
	}
	if access == "" {
		return ErrNotLoggedIn
	}

	refreshed := false
	if accessTokenExpired(access, s.now()) {
		if access, err = s.refresh(ctx); err != nil {
			return err
		}
		refreshed = true
	}

	err = fn(ctx, access)
	if refreshed || !errors.Is(err, client.ErrUnauthorized) {
		return err
	}

	if access, err = s.refresh(ctx); err != nil {
		return err
	}
	return fn(ctx, access)
}

func (s *Session) refresh(ctx context.Context) (string, error) {
	repo := metadata.NewSQLiteRepository(s.db)
	refreshToken, err := repo.Get(ctx, common.StorageKeyRefreshToken)
	if err != nil {
		return "", err
	}
	if refreshToken == "" {
		return "", ErrNoRefreshToken
	}
	user, err := repo.Get(ctx, common.StorageKeyUser)
	if err != nil {
		return "", err
	}

	pair, err := s.api.Refresh(ctx, refreshToken)
	if err != nil {
		s.log.Warn(ctx, "token refresh failed", "error", err)
		return "", fmt.Errorf("refresh token: %w", err)
	}
	if pair.Refresh != "" {
		refreshToken = pair.Refresh
	}

	err = s.writeStorage(ctx, map[string]string{
		common.StorageKeyAccessToken:  pair.Access,
		common.StorageKeyRefreshToken: refreshToken,
		common.StorageKeyUser:         user,
	})
	if err != nil {
		return "", fmt.Errorf("persist refreshed tokens: %w", err)
	}

	s.log.Debug(ctx, "access token refreshed")
	return pair.Access, nil
}

func (s *Session) writeStorage(ctx context.Context, values map[string]string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		for _, key := range common.SessionStorageKeys {
			if err := repo.Set(ctx, key, values[key]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Session) clearStorage(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		for _, key := range common.SessionStorageKeys {
			if err := repo.Delete(ctx, key); err != nil {
				return err
			}
		}
		return nil
	})
}
