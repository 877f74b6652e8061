package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/glowcart/internal/client/cart"
	"github.com/dmitrijs2005/glowcart/internal/client/client"
	"github.com/dmitrijs2005/glowcart/internal/client/config"
	"github.com/dmitrijs2005/glowcart/internal/client/services"
	"github.com/dmitrijs2005/glowcart/internal/client/session"
	"github.com/dmitrijs2005/glowcart/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// pingTimeout bounds a single reachability probe.
const pingTimeout = 3 * time.Second

type App struct {
	config *config.Config
	log    logging.Logger
	db     *sql.DB
	api    client.Client

	session  *session.Session
	cart     *cart.Cart
	catalog  *services.Catalog
	checkout *services.Checkout
	orders   *services.Orders

	reader *bufio.Reader
	out    io.Writer

	mu        sync.Mutex
	mode      Mode
	listing   *services.Listing
	user      string
	cartCount int
	unsub     []func()
}

// NewApp opens the session database, builds the API client and constructs
// the state holders and services shared by all commands.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	api, err := client.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a := &App{
		config: c,
		log:    log,
		db:     db,
		api:    api,
		cart:   cart.New(),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
	a.session = session.New(api, db, session.WithNavigator(a), session.WithLogger(log))
	a.catalog = services.NewCatalog(api, api.BaseURL(), c.DemoFallback, log)
	a.checkout = services.NewCheckout()
	a.orders = services.NewOrders(api, a.session)
	a.watchState()

	return a, nil
}

// watchState keeps the prompt status in sync with the session and cart
// holders and logs their transitions.
func (a *App) watchState() {
	unsubSession := a.session.Subscribe(func(st session.State) {
		name := ""
		if st.IsAuthenticated() {
			name = st.User.DisplayName()
		}
		a.mu.Lock()
		a.user = name
		a.mu.Unlock()
		a.log.Debug(context.Background(), "session changed", "status", st.Status.String(), "user", name)
	})
	unsubCart := a.cart.Subscribe(func(snap cart.Snapshot) {
		a.mu.Lock()
		a.cartCount = snap.TotalItems
		a.mu.Unlock()
		a.log.Debug(context.Background(), "cart changed", "items", snap.TotalItems, "total", snap.TotalPrice.StringFixed(2))
	})
	a.unsub = append(a.unsub, unsubSession, unsubCart)
}

// Run restores the previous session and serves commands until the user
// exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.Close(); err != nil {
			a.log.Error(ctx, "shutdown", "error", err)
		}
	}()
	a.Root(ctx)
}

func (a *App) Close() error {
	for _, cancel := range a.unsub {
		cancel()
	}
	return errors.Join(a.api.Close(), a.db.Close())
}

// ResetToRoot returns to the landing view after logout: the cart is emptied
// and the welcome banner is shown again.
func (a *App) ResetToRoot() {
	a.cart.Clear()
	a.mu.Lock()
	a.listing = nil
	a.mu.Unlock()
	a.banner()
}

func (a *App) isLoggedIn() bool {
	return a.session.State().IsAuthenticated()
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.log.Info(context.Background(), "switched mode", "mode", mode)
	}
}

// checkOnline probes the backend once and records the result.
func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := a.api.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

// StartOnlineStatusWatcher pings the backend every interval until ctx is
// done. It is the only goroutine besides the REPL and only touches the mode.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}
