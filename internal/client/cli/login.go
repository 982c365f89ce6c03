package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	if err := c.authService.Login(ctx, username, password); err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Username: %s\n", username)

	// Накопленные оффлайн операции можно отправить сразу после логина
	result, err := c.syncService.Drain(ctx)
	if err == nil && result.Synced > 0 {
		c.io.Printf("Synced %d pending operation(s).\n", result.Synced)
	}

	return nil
}
