package cli

import (
	"context"
	"os"
)

// Verify checks whether username has admin rights. When username is empty the
// user is prompted for one. Denials print the server's message when one is
// present; otherwise the denial is silent.
func (a *App) Verify(ctx context.Context, username string) error {
	if username == "" {
		name, err := getSimpleText(a.reader, "Enter username to verify", os.Stdout)
		if err != nil {
			return err
		}
		username = name
	}

	ctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()

	granted, message, err := a.api.Verify(ctx, username)
	if err != nil {
		printlnFn("Verification failed:", err.Error())
		return err
	}

	if granted {
		printlnFn("Access granted")
		return nil
	}

	if message != "" {
		printlnFn(message)
	}
	return nil
}

// Ping checks server reachability.
func (a *App) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()

	if err := a.api.Ping(ctx); err != nil {
		printlnFn("Server unreachable:", err.Error())
		return err
	}
	printlnFn("Server is up")
	return nil
}
