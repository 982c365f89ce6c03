package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/iudanet/gophshop/internal/client/api"
	"github.com/iudanet/gophshop/internal/client/auth"
	"github.com/iudanet/gophshop/internal/client/cart"
	"github.com/iudanet/gophshop/internal/client/cli"
	"github.com/iudanet/gophshop/internal/client/iocli"
	"github.com/iudanet/gophshop/internal/client/netcheck"
	"github.com/iudanet/gophshop/internal/client/state"
	"github.com/iudanet/gophshop/internal/client/storage/boltdb"
	"github.com/iudanet/gophshop/internal/client/sync"
	"github.com/iudanet/gophshop/internal/client/wishlist"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "gophshop-client.db", "Path to local database")
	probeURL := flag.String("probe", "", "Connectivity probe URL")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	ctx := context.Background()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// Собираем сервисы клиента
	apiClient := api.NewClient(*serverURL)
	authService := auth.NewService(apiClient, boltStorage, logger)
	checker := netcheck.NewProber(*probeURL, *serverURL, logger)
	syncService := sync.NewService(apiClient, boltStorage, checker, authService, logger)
	hub := state.NewHub()
	cartService := cart.NewService(boltStorage.Cart(), boltStorage, syncService, hub, logger)
	wishlistService := wishlist.NewService(boltStorage.Wishlist(), boltStorage, syncService, hub, logger)

	c := cli.New(iocli.NewStdio(), authService, cartService, wishlistService, syncService)
	c.Run(ctx, args[0], args[1:])
}

func printVersion() {
	fmt.Printf("GophShop Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
