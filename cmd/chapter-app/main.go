package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chapter-app-go/internal/app"
	"chapter-app-go/internal/config"
	"chapter-app-go/pkg/logger"
)

// Config first, then the logger: Load pulls in .env, and ENV/LOG_LEVEL may
// live there.
func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(cfg, log)
	if err != nil {
		log.Critical("startup failed", "err", err)
		os.Exit(1)
	}

	srv := application.HTTPServer()
	log.Info("server ready", "addr", srv.Addr, "env", cfg.Env)

	serverErrCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()

	exitCode := 0
	select {
	case <-ctx.Done():
		log.Info("signal received, draining connections")
	case err := <-serverErrCh:
		if err != nil {
			log.Critical("server exited", "addr", srv.Addr, "err", err)
			exitCode = 1
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("shutdown incomplete", "err", err)
		exitCode = 1
	}

	if err := application.Close(); err != nil {
		log.Error("resource cleanup failed", "err", err)
		exitCode = 1
	}

	if exitCode != 0 {
		os.Exit(exitCode)
	}
	log.Info("bye")
}
