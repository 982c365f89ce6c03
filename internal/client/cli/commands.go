package cli

import (
	"context"
	"fmt"
	"os"
)

// Run выполняет одну команду; ошибка печатается в stderr и завершает
// процесс с ненулевым кодом
func (c *Cli) Run(ctx context.Context, command string, args []string) {
	var err error

	switch command {
	case "register":
		err = c.runRegister(ctx)
	case "login":
		err = c.runLogin(ctx)
	case "logout":
		err = c.runLogout(ctx)
	case "status":
		err = c.runStatus(ctx)
	case "cart":
		err = c.runCart(ctx, args)
	case "wish":
		err = c.runWishlist(ctx, args)
	case "sync":
		err = c.runSync(ctx)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		PrintUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runCart разбирает подкоманды корзины
func (c *Cli) runCart(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("cart requires a subcommand: add, list, update, remove, clear")
	}

	switch args[0] {
	case "add":
		return c.runCartAdd(ctx)
	case "list":
		return c.runCartList(ctx)
	case "update":
		return c.runCartUpdate(ctx, args[1:])
	case "remove":
		return c.runCartRemove(ctx, args[1:])
	case "clear":
		return c.runCartClear(ctx)
	default:
		return fmt.Errorf("unknown cart subcommand: %s", args[0])
	}
}

// runWishlist разбирает подкоманды избранного
func (c *Cli) runWishlist(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("wish requires a subcommand: add, list, remove")
	}

	switch args[0] {
	case "add":
		return c.runWishlistAdd(ctx)
	case "list":
		return c.runWishlistList(ctx)
	case "remove":
		return c.runWishlistRemove(ctx, args[1:])
	default:
		return fmt.Errorf("unknown wish subcommand: %s", args[0])
	}
}
