package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")
	c.io.Println()

	result, err := c.syncService.Drain(ctx)
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	if result.Deferred {
		c.io.Println("Server is unreachable, synchronization deferred.")
		c.io.Println("Pending operations stay queued and will be sent later.")
		return nil
	}

	if result.Attempted == 0 {
		c.io.Println("✓ Nothing to synchronize.")
		return nil
	}

	c.io.Println("✓ Synchronization completed!")
	c.io.Println()
	c.io.Printf("Synced:  %d operation(s)\n", result.Synced)
	if result.Retried > 0 {
		c.io.Printf("Retried: %d operation(s) stay queued\n", result.Retried)
	}
	if result.Dropped > 0 {
		c.io.Printf("Dropped: %d operation(s) abandoned after repeated failures\n", result.Dropped)
	}

	return nil
}
