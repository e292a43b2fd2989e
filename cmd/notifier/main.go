package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/reshetovitsme/rss-telegram-notifier/internal/di"
	watcherService "github.com/reshetovitsme/rss-telegram-notifier/internal/modules/watcher/service"
	"github.com/reshetovitsme/rss-telegram-notifier/internal/shared/config"
	"github.com/reshetovitsme/rss-telegram-notifier/internal/shared/logging"
	httpServer "github.com/reshetovitsme/rss-telegram-notifier/internal/transport/http"
	"github.com/samber/do/v2"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Setup dependency injection
	injector, err := di.Setup()
	if err != nil {
		slog.Error("Failed to setup dependency injection", "error", err)
		return 1
	}

	cfg, err := do.Invoke[*config.Config](injector)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	logger, logCloser := logging.New(logging.FromConfig(cfg))
	defer logCloser.Close()
	slog.SetDefault(logger)

	defer func() {
		if err := di.Shutdown(injector); err != nil {
			slog.Error("Error during shutdown", "error", err)
		}
	}()

	watcher, err := do.Invoke[*watcherService.Service](injector)
	if err != nil {
		slog.Error("Failed to initialize services", "error", err)
		return 1
	}

	if !cfg.WatchMode() {
		outcome := watcher.Check(context.Background())
		slog.Info("Check finished",
			"status", outcome.Status,
			"latest", outcome.Latest,
			"notified", outcome.Notified,
			"persisted", outcome.Persisted,
		)
		return 0
	}

	server, err := do.Invoke[*httpServer.Server](injector)
	if err != nil {
		slog.Error("Failed to initialize status server", "error", err)
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	watcher.Start(ctx)

	go func() {
		if err := server.Start(); err != nil {
			slog.Error("Status server stopped", "error", err)
			cancel()
		}
	}()

	slog.Info("Watching feed", "feed_url", cfg.FeedURL, "interval", cfg.PollInterval, "port", cfg.HTTPPort)
	slog.Info("Press Ctrl+C to stop")

	<-ctx.Done()
	slog.Info("Shutting down...")
	return 0
}
