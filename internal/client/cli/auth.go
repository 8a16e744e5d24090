package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/helpdesk/internal/client/api"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts the user for credentials and authenticates against the
// server. On success the session is persisted by the AuthService and the
// prompt switches to the logged-in form.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	profile, err := a.authService.Login(ctx, email, string(password))
	if err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	role, err := a.authService.GetUserRole(ctx)
	if err != nil {
		return err
	}

	a.userName, a.role = profile.Name, role
	printlnFn(fmt.Sprintf("Welcome, %s!", profile.Name))
	return nil
}

// Logout forgets the saved session. It succeeds even when nothing was saved.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		a.reportError(err)
		return err
	}
	a.userName, a.role = "", ""
	printlnFn("Logged out")
	return nil
}

// Profile shows the user's profile, refreshed from the server. When the
// server cannot be reached the locally cached copy is shown instead, with
// a note that the data may be stale. An expired session is never papered
// over with cached data.
func (a *App) Profile(ctx context.Context) error {
	profile, err := a.authService.GetUserProfile(ctx)
	if err != nil {
		if !errors.Is(err, api.ErrUnavailable) {
			a.reportError(err)
			return err
		}
		cached, cerr := a.authService.GetUserData(ctx)
		if cerr != nil {
			a.reportError(err)
			return err
		}
		printlnFn("Server unreachable, showing saved profile")
		profile = cached
	}

	printlnFn("Name: ", profile.Name)
	printlnFn("Email:", profile.Email)
	if profile.Phone != "" {
		printlnFn("Phone:", profile.Phone)
	}
	return nil
}

// Passwd prompts for a new password and submits it to the server.
func (a *App) Passwd(ctx context.Context) error {
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.authService.UpdateUserProfile(ctx, string(password)); err != nil {
		a.reportError(err)
		return err
	}

	printlnFn("Password updated")
	return nil
}
