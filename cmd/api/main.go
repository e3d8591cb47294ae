package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SimoKiihamaki/nexa/internal/api"
	"github.com/SimoKiihamaki/nexa/internal/logging"
)

var (
	addr        string
	level       string
	exposeUsers bool
)

var rootCmd = &cobra.Command{
	Use:          "nexa-api",
	Short:        "Local auth backend for the Nexa client",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := logging.Console(level)
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()
		return serve(cmd.Context(), logger)
	},
}

func serve(parent context.Context, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps := api.Dependencies{
		UserRepo:    api.NewInMemoryUserRepository(api.RepositoryOptions{}),
		RateLimiter: api.NewRateLimiter(60, 10), // 60 requests per minute, burst of 10
		Logger:      logger,
		ExposeUsers: exposeUsers,
	}
	deps.RateLimiter.CleanupRoutine(ctx, 5*time.Minute)

	server := api.NewServer(api.Config{Addr: addr}, deps)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting api server", zap.String("addr", server.Addr()))
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.Info("server shutdown complete")
	return nil
}

func init() {
	rootCmd.Flags().StringVar(&addr, "addr", api.DefaultAPIAddr, "listen address")
	rootCmd.Flags().StringVar(&level, "log-level", "INFO", "DEBUG, INFO, WARNING or ERROR")
	rootCmd.Flags().BoolVar(&exposeUsers, "expose-users", false, "mount GET /dev/users")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
