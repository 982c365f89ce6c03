package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/gophshop/internal/client/auth"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()

	session, err := c.authService.Session(ctx)
	switch {
	case errors.Is(err, auth.ErrNotAuthenticated):
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'gophshop login' to authenticate.")
	case err != nil:
		return fmt.Errorf("failed to load session: %w", err)
	default:
		expiresAt := time.Unix(session.ExpiresAt, 0)
		remaining := time.Until(expiresAt)

		c.io.Println("Status: Authenticated")
		c.io.Printf("Username: %s\n", session.Username)
		c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))
		if remaining > 0 {
			c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
		} else {
			c.io.Println("⚠️  Token has expired. Please login again.")
		}
	}

	// Очередь отложенных операций показываем в любом случае:
	// оффлайн-мутации копятся и без сессии
	pending, err := c.syncService.PendingCount(ctx)
	if err != nil {
		c.io.Printf("\nWarning: failed to get pending operation count: %v\n", err)
		return nil
	}

	c.io.Println()
	if pending > 0 {
		c.io.Printf("⚠️  Pending sync: %d operation(s) waiting to be sent\n", pending)
		c.io.Println("Run 'gophshop sync' to push them to the server.")
	} else {
		c.io.Println("✓ All changes synchronized with server")
	}

	return nil
}
