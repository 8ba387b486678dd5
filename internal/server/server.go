// Package server owns the HTTP lifecycle: boot the shared infrastructure,
// build the handler, listen, and drain connections on shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sweetdelights/bakery/config"
	"github.com/sweetdelights/bakery/pkg/cache"
	"github.com/sweetdelights/bakery/pkg/logger"
	"github.com/sweetdelights/bakery/pkg/schedule"
	"github.com/sweetdelights/bakery/pkg/storage"
)

const shutdownTimeout = 10 * time.Second

// Boot loads configuration and connects the shared infrastructure.
// It returns a cleanup function to run on shutdown.
func Boot() (func(), error) {
	if err := config.Load(); err != nil {
		return nil, fmt.Errorf("server: load config: %w", err)
	}
	closeLogs := logger.Connect()
	storage.Connect()
	if err := cache.Connect(); err != nil {
		logger.Warn("server: cache unavailable, continuing without it", "error", err)
	}
	return closeLogs, nil
}

// Start boots the infrastructure, starts the background scheduler and serves
// the given handler until SIGINT/SIGTERM, then drains in-flight requests.
func Start(handler http.Handler) error {
	cleanup, err := Boot()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registerBackups()
	schedule.Start(ctx)

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server: listening", "addr", srv.Addr, "env", config.AppEnv())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("server: shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	logger.Info("server: stopped")
	return nil
}
