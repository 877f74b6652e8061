package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/glowcart/internal/client/forms"
	"github.com/dmitrijs2005/glowcart/internal/client/session"
	"github.com/dmitrijs2005/glowcart/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

var errAlreadyLoggedIn = errors.New("already logged in, logout first")

// Register prompts for the sign-up form and creates the account. The new
// user is signed in right away.
func (a *App) Register(ctx context.Context) error {
	if a.isLoggedIn() {
		return errAlreadyLoggedIn
	}

	name, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	res := a.session.Register(ctx, forms.RegisterForm{
		Name:            name,
		Email:           email,
		Password:        string(password),
		ConfirmPassword: string(confirm),
	})
	if !res.Success {
		return errors.New(res.Reason)
	}

	fmt.Fprintf(a.out, "Account created. Welcome, %s!\n", a.session.State().User.DisplayName())
	return nil
}

// Login prompts for credentials and signs in. Switching users requires a
// logout first so the previous user's cart is dropped.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		return errAlreadyLoggedIn
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res := a.session.Login(ctx, email, string(password))
	if !res.Success {
		return errors.New(res.Reason)
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", a.session.State().User.DisplayName())
	return nil
}

// Logout ends the session. The session resets the view through
// ResetToRoot, which also empties the cart.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		return session.ErrNotLoggedIn
	}
	err := a.session.Logout(ctx)
	fmt.Fprintln(a.out, "You have been logged out.")
	return err
}
