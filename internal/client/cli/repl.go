package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn and printFn are test seams for user-facing output. In tests,
// replace them with stubs.
var (
	printlnFn = fmt.Println
	printFn   = fmt.Print
)

// execIface defines the command surface the REPL dispatches to. The real App
// type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Products(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Add(ctx context.Context, args []string) error
	Remove(ctx context.Context, args []string) error
	Quantity(ctx context.Context, args []string) error
	Cart(ctx context.Context) error
	ClearCart(ctx context.Context) error
	Checkout(ctx context.Context) error
	Dashboard(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: register, login, products [category], search <text>, show <id>, " +
		"add <id> [qty], remove <id>, qty <id> <n>, cart, clear, checkout, exit"
	helpLoggedIn = "Available commands: products [category], search <text>, show <id>, " +
		"add <id> [qty], remove <id>, qty <id> <n>, cart, clear, checkout, dashboard, logout, exit"
)

// runREPL reads commands line by line from reader and dispatches them to a.
// The first token is the command, the rest are its arguments. The loop exits
// on EOF or when the user types "exit" or "quit".
//
// Commands run one at a time on this goroutine, so a command cannot be issued
// again while a previous one is still waiting for the backend. Handler errors
// are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printFn(fmt.Sprintf("glowcart %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "register":
			cmdErr = a.Register(ctx)

		case "login":
			cmdErr = a.Login(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "products", "p":
			cmdErr = a.Products(ctx, args)

		case "search":
			cmdErr = a.Search(ctx, args)

		case "show":
			cmdErr = a.Show(ctx, args)

		case "add":
			cmdErr = a.Add(ctx, args)

		case "remove", "rm":
			cmdErr = a.Remove(ctx, args)

		case "qty":
			cmdErr = a.Quantity(ctx, args)

		case "cart":
			cmdErr = a.Cart(ctx)

		case "clear":
			cmdErr = a.ClearCart(ctx)

		case "checkout":
			cmdErr = a.Checkout(ctx)

		case "dashboard":
			cmdErr = a.Dashboard(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", cmdErr)
		}
		if err != nil {
			return
		}
	}
}
