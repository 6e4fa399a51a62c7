package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/treiher/valens-client/internal/domain"
)

// Users lists the users known to the remote service. It requires
// connectivity; users are never cached.
func (a *App) Users(ctx context.Context) error {
	users, err := a.repo.ReadUsers(ctx)
	if err != nil {
		printError(err)
		return err
	}
	for _, user := range users {
		fmt.Printf("%s  %s (%s)\n", user.ID, user.Name, user.Sex)
	}
	return nil
}

// Login establishes a session for the given user id.
func (a *App) Login(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: login <user-id>")
		return nil
	}

	id, err := domain.ParseUserID(args[0])
	if err != nil {
		printlnFn("Invalid user id:", args[0])
		return err
	}

	user, err := a.repo.RequestSession(ctx, id)
	if err != nil {
		printError(err)
		return err
	}

	fmt.Printf("Logged in as %s\n", user.Name)
	return nil
}

// Resume restores the cached session without a network call.
func (a *App) Resume(ctx context.Context) error {
	user, err := a.repo.InitializeSession(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoSession) {
			printlnFn("No cached session, use 'login <user-id>'")
		} else {
			printError(err)
		}
		return err
	}

	fmt.Printf("Resumed session for %s\n", user.Name)
	return nil
}

// Logout ends the session and drops all session-dependent cached data.
func (a *App) Logout(ctx context.Context) error {
	if err := a.repo.DeleteSession(ctx); err != nil {
		printError(err)
		return err
	}
	printlnFn("Logged out")
	return nil
}

// Version reports the version of the remote service.
func (a *App) Version(ctx context.Context) error {
	version, err := a.repo.ReadVersion(ctx)
	if err != nil {
		printError(err)
		return err
	}
	printlnFn("Server version:", version)
	return nil
}

func printError(err error) {
	switch {
	case errors.Is(err, domain.ErrNoConnection):
		printlnFn("Server unreachable, try again when online")
	case errors.Is(err, domain.ErrConflict):
		printlnFn("Already exists:", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		printlnFn("Not found:", err.Error())
	default:
		printlnFn("Error:", err.Error())
	}
}
