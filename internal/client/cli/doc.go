// Package cli provides the interactive storefront command-line client.
//
// It wires configuration, the local session database, the REST API client,
// the session and cart state holders and the catalog, checkout and dashboard
// services into a REPL. A background watcher pings the backend and shows
// whether the client is online.
//
// Commands:
//   - register / login / logout
//   - products [category], search <text>, show <id>
//   - add <id> [qty], remove <id>, qty <id> <n>, cart, clear
//   - checkout (review only, nothing is submitted)
//   - dashboard (order history of the signed-in user)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
