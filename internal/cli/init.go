// Package cli provides the shared bootstrap used by cmd/harcama:
// .env loading, logger setup, config validation, and store wiring.
package cli

import (
	"context"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"harcama/internal/amqp"
	"harcama/internal/backend"
	"harcama/internal/category"
	"harcama/internal/config"
	"harcama/internal/ledger"
	applog "harcama/internal/log"
)

// LoadEnvFile loads the .env file for local development. Errors are
// ignored; the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger builds the component logger at the given level and
// installs it as the process default.
func SetupLogger(level string) *applog.Logger {
	logger := applog.New(applog.Config{Level: parseLevel(level), Component: applog.ComponentApp})
	applog.SetDefault(logger)
	return logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LoadAndValidateConfig loads configuration and validates it.
func LoadAndValidateConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// OpenStore wires the store: snapshotter and optional AMQP publisher
// are initialized concurrently, the in-process notifier is attached,
// and the persisted ledger is loaded. The returned cleanup closes
// everything in reverse order.
func OpenStore(ctx context.Context, cfg *config.Config, reg *category.Registry, logger *applog.Logger) (*ledger.Store, *ledger.Notifier, func(), error) {
	var (
		snap      ledger.Snapshotter
		publisher *amqp.Client
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := backend.NewSnapshotter(cfg, logger)
		if err != nil {
			return err
		}
		snap = s
		return nil
	})
	if cfg.AMQPURL != "" {
		g.Go(func() error {
			c, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
			if err != nil {
				return err
			}
			publisher = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if snap != nil {
			snap.Close()
		}
		if publisher != nil {
			publisher.Close()
		}
		return nil, nil, nil, err
	}

	store := ledger.NewStore(snap, reg, logger)
	store.SetPersistTimeout(cfg.PersistTimeout)

	notifier := ledger.NewNotifier(logger)
	store.AttachSink(notifier)
	if publisher != nil {
		store.AttachSink(publisher)
		logger.Info("AMQP event publishing enabled",
			applog.FieldExchange, cfg.AMQPExchange,
			applog.FieldQueue, cfg.AMQPQueue)
	}

	cleanup := func() {
		notifier.Close()
		if publisher != nil {
			if err := publisher.Close(); err != nil {
				logger.Error("Failed to close AMQP client", applog.FieldError, err)
			}
		}
		if err := store.Close(); err != nil {
			logger.Error("Failed to close store", applog.FieldError, err)
		}
	}

	if err := store.Load(ctx); err != nil {
		cleanup()
		return nil, nil, nil, err
	}
	return store, notifier, cleanup, nil
}
