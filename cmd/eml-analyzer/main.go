package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/mikey/eml-analyzer/internal/adapters/report"
	"github.com/mikey/eml-analyzer/internal/core"
	"github.com/mikey/eml-analyzer/internal/di"
	"github.com/mikey/eml-analyzer/internal/ports"
	"github.com/mikey/eml-analyzer/internal/utils"
)

func main() {
	// Environment overrides may live in a .env file next to the binary
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Printf("Failed to load .env file: %v\n", err)
	}

	flags, err := di.ParseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	// Build the dependency injection container
	container, err := di.BuildContainer(flags)
	if err != nil {
		fmt.Printf("Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	// Run the application
	if err := container.Invoke(run); err != nil {
		fmt.Printf("Application error: %v\n", err)
		os.Exit(1)
	}
}

// run is the main application function that gets all dependencies injected
func run(
	logger *zap.Logger,
	runner ports.BatchRunner,
	geo core.GeoLocator,
	cache ports.ManagedCache,
	textProcessor *utils.TextProcessor,
) error {
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	results, runErr := runner.Run(ctx)
	if len(results) > 0 {
		report.WriteSummary(os.Stdout, results, textProcessor)
	}

	// Close any resources that need closing
	if closer, ok := geo.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logger.Error("Failed to close geolocation provider", zap.Error(err))
		}
	}
	if cache != nil {
		cache.Stop()
	}

	if runErr != nil {
		if errors.Is(runErr, context.Canceled) {
			logger.Info("Interrupted, remaining messages skipped", zap.Int("processed", len(results)))
			return nil
		}
		return runErr
	}

	logger.Info("Analysis complete", zap.Int("messages", len(results)))
	return nil
}
