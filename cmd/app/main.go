package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"rainydays.app/internal/app"
	"rainydays.app/pkg/logger"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using process environment")
	}

	logger.NewWithLevel(logger.ParseLevel(os.Getenv("LOG_LEVEL"))).SetDefault()

	if err := run(); err != nil {
		slog.Error("Rainy Days stopped with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	application, err := app.NewApplication()
	if err != nil {
		return err
	}

	cfg := application.Config()
	slog.Info("Configuration loaded",
		"port", cfg.Server.Port,
		"database", cfg.Database.Driver.String(),
		"cache", cfg.Cache.Type.String(),
		"warmup", cfg.Warmup.Enabled)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- application.Start(ctx)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
		slog.Info("Received shutdown signal...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return application.Shutdown(shutdownCtx)
}
