package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resource-api/config"
	_ "resource-api/docs" // Swagger docs
	"resource-api/internal/app"
	"resource-api/pkg/container"
	"resource-api/pkg/log"
)

const shutdownTimeout = 15 * time.Second

// @title       Resource API
// @description Authenticated CRUD over books and products.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey Bearer
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Println("Invalid config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Resource API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error(ctx, "Server stopped with error: ", err)
		os.Exit(1)
	}
	logger.Info(ctx, "Server stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	// 3. Components
	c, err := app.NewContainer(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		disposeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := c.DisposeAll(disposeCtx); err != nil {
			logger.Errorf(disposeCtx, "Teardown finished with errors: %v", err)
		}
	}()

	if err := c.Validate(); err != nil {
		return fmt.Errorf("wiring: %w", err)
	}
	srv := container.MustResolve(c, app.HTTPServerKey)

	// 4. Run until a signal arrives or the listener fails
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case <-ctx.Done():
		logger.Info(ctx, "Shutdown signal received")
		return nil
	case err := <-errCh:
		if err == nil {
			err = errors.New("server exited unexpectedly")
		}
		return err
	}
}
