package cli

import (
	"context"
	"fmt"
	"strings"
)

const welcomeBanner = "Welcome to GlowCart, your makeup shop (type 'help' for commands)"

func (a *App) banner() {
	fmt.Fprintln(a.out, welcomeBanner)
}

// getStatus renders the prompt decoration, e.g. "(Ana online cart:2)".
func (a *App) getStatus() string {
	a.mu.Lock()
	user, mode, n := a.user, a.mode, a.cartCount
	a.mu.Unlock()

	var parts []string
	if user != "" {
		parts = append(parts, user)
	}
	if mode != "" {
		parts = append(parts, string(mode))
	}
	if n > 0 {
		parts = append(parts, fmt.Sprintf("cart:%d", n))
	}
	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// Root shows the banner, restores the previous session and runs the REPL on
// the App's input.
func (a *App) Root(ctx context.Context) {
	a.banner()

	a.session.Initialize(ctx)
	if st := a.session.State(); st.IsAuthenticated() {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", st.User.DisplayName())
	}

	a.checkOnline(ctx)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}
