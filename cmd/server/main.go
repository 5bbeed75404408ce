package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bankcore/ledger/pkg/app"
	"github.com/bankcore/ledger/pkg/config"
	"github.com/bankcore/ledger/webapi"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger := app.SetupLogger(&cfg.Log)
	slog.SetDefault(logger)

	deps := app.NewDeps(cfg, logger)
	srv := webapi.NewApp(deps)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server", "env", cfg.Env, "addr", addr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Listen(addr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutting down", "signal", sig.String())
		return srv.ShutdownWithTimeout(cfg.Server.ShutdownTimeout)
	}
}
