package di

import (
	"context"
	"io"
	"log/slog"

	feedService "github.com/reshetovitsme/rss-telegram-notifier/internal/modules/feed/service"
	notificationRepo "github.com/reshetovitsme/rss-telegram-notifier/internal/modules/notification/repository"
	notificationService "github.com/reshetovitsme/rss-telegram-notifier/internal/modules/notification/service"
	stateRepo "github.com/reshetovitsme/rss-telegram-notifier/internal/modules/state/repository"
	watcherService "github.com/reshetovitsme/rss-telegram-notifier/internal/modules/watcher/service"
	"github.com/reshetovitsme/rss-telegram-notifier/internal/shared/config"
	"github.com/reshetovitsme/rss-telegram-notifier/internal/shared/errors"
	httpServer "github.com/reshetovitsme/rss-telegram-notifier/internal/transport/http"
	"github.com/reshetovitsme/rss-telegram-notifier/internal/transport/telegram"
	"github.com/samber/do/v2"
	"github.com/samber/oops"
)

// Setup initializes the dependency injection container with configuration
// loaded from the environment and config files
func Setup() (do.Injector, error) {
	injector := do.New()

	do.Provide(injector, func(i do.Injector) (*config.Config, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, oops.With("context", "failed to load config").Wrap(err)
		}
		return cfg, nil
	})

	register(injector)
	return injector, nil
}

// SetupWithConfig initializes the container around an already loaded config
func SetupWithConfig(cfg *config.Config) do.Injector {
	injector := do.New()
	do.ProvideValue(injector, cfg)
	register(injector)
	return injector
}

func register(injector do.Injector) {
	// Register State Repository
	do.Provide(injector, func(i do.Injector) (stateRepo.Repository, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return newStateRepository(cfg)
	})

	// Register Notification Journal
	do.Provide(injector, func(i do.Injector) (notificationRepo.Repository, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.JournalPath == "" {
			return notificationRepo.NewMemoryStorage(100), nil
		}
		repo, err := notificationRepo.NewFileStorage(cfg.JournalPath)
		if err != nil {
			return nil, oops.With("journal_path", cfg.JournalPath, "context", "failed to initialize notification journal").Wrap(err)
		}
		return repo, nil
	})

	// Register Feed Service
	do.Provide(injector, func(i do.Injector) (*feedService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return feedService.New(cfg.HTTPTimeout), nil
	})

	// Register Telegram Sender
	do.Provide(injector, func(i do.Injector) (*telegram.Sender, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return telegram.New(cfg)
	})

	// Register Notification Service
	do.Provide(injector, func(i do.Injector) (*notificationService.Service, error) {
		sender := do.MustInvoke[*telegram.Sender](i)
		journal := do.MustInvoke[notificationRepo.Repository](i)
		return notificationService.New(sender, journal), nil
	})

	// Register Watcher Service
	do.Provide(injector, func(i do.Injector) (*watcherService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		fetcher := do.MustInvoke[*feedService.Service](i)
		state := do.MustInvoke[stateRepo.Repository](i)
		notifier := do.MustInvoke[*notificationService.Service](i)
		return watcherService.New(cfg, fetcher, state, notifier), nil
	})

	// Register HTTP Server
	do.Provide(injector, func(i do.Injector) (*httpServer.Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		watcher := do.MustInvoke[*watcherService.Service](i)
		notifications := do.MustInvoke[*notificationService.Service](i)
		server := httpServer.New(cfg, watcher, notifications)
		server.SetLogger(slog.Default())
		return server, nil
	})
}

func newStateRepository(cfg *config.Config) (stateRepo.Repository, error) {
	switch cfg.StateBackend {
	case config.StateBackendFile, "":
		repo, err := stateRepo.NewFileStorage(cfg.StatePath)
		if err != nil {
			return nil, oops.With("state_path", cfg.StatePath, "context", "failed to initialize state repository").Wrap(err)
		}
		return repo, nil
	case config.StateBackendRedis:
		repo, err := stateRepo.NewRedisStorage(context.Background(), stateRepo.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Key:      cfg.RedisKey,
		})
		if err != nil {
			return nil, err
		}
		return repo, nil
	case config.StateBackendSqlite:
		repo, err := stateRepo.NewSQLiteStorage(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return repo, nil
	case config.StateBackendMemory:
		return stateRepo.NewMemoryStorage(""), nil
	default:
		return nil, oops.With("state_backend", cfg.StateBackend).Wrap(errors.ErrUnsupportedBackend)
	}
}

// Shutdown gracefully shuts down all services
func Shutdown(injector do.Injector) error {
	ctx := context.Background()

	if server, err := do.Invoke[*httpServer.Server](injector); err == nil && server != nil {
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Error stopping status server", "error", err)
		}
	}

	if watcher, err := do.Invoke[*watcherService.Service](injector); err == nil && watcher != nil {
		watcher.Stop()
	}

	if state, err := do.Invoke[stateRepo.Repository](injector); err == nil {
		if closer, ok := state.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				return oops.With("context", "failed to close state repository").Wrap(err)
			}
		}
	}

	return nil
}
