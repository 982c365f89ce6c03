package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runWishlistAdd(ctx context.Context) error {
	c.io.Println("=== Add to Wishlist ===")
	c.io.Println()

	product, err := c.readProduct()
	if err != nil {
		return err
	}

	if err := c.wishlistService.AddItem(ctx, product); err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Added to wishlist.")
	return nil
}

func (c *Cli) runWishlistList(ctx context.Context) error {
	items, err := c.wishlistService.List(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Wishlist ===")
	c.io.Println()

	if len(items) == 0 {
		c.io.Println("Wishlist is empty.")
		return nil
	}

	for _, item := range items {
		c.io.Printf("%s  %s (%s)  %.2f\n",
			item.ID, item.Name, item.Type, item.Snapshot().EffectivePrice())
	}

	c.io.Println()
	c.io.Printf("Items: %d\n", len(items))
	return nil
}

func (c *Cli) runWishlistRemove(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: wish remove <id>")
	}

	if err := c.wishlistService.RemoveItem(ctx, args[0]); err != nil {
		return err
	}

	c.io.Println("✓ Item removed from wishlist.")
	return nil
}
