// Package backend selects the ledger snapshotter named by the
// configuration.
package backend

import (
	"fmt"

	"harcama/internal/config"
	"harcama/internal/ledger"
	"harcama/internal/ledger/file"
	"harcama/internal/ledger/memory"
	applog "harcama/internal/log"
	"harcama/internal/storage"
)

// NewSnapshotter builds the persistence backend for the configured
// DataBackend: "file" (default), "sqlite", or "memory".
func NewSnapshotter(cfg *config.Config, logger *applog.Logger) (ledger.Snapshotter, error) {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	logger = logger.WithComponent(applog.ComponentStorage)

	switch cfg.DataBackend {
	case "sqlite":
		snap, err := storage.NewSQLiteSnapshotter(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite backend: %w", err)
		}
		logger.Info("Initialized sqlite backend",
			applog.FieldBackend, cfg.DataBackend,
			applog.FieldPath, cfg.SQLiteDBPath)
		return snap, nil
	case "memory":
		logger.Info("Initialized memory backend", applog.FieldBackend, cfg.DataBackend)
		return memory.New(), nil
	case "file", "":
		snap, err := file.New(cfg.LedgerPath)
		if err != nil {
			return nil, fmt.Errorf("initialize file backend: %w", err)
		}
		logger.Info("Initialized file backend",
			applog.FieldBackend, cfg.DataBackend,
			applog.FieldPath, cfg.LedgerPath)
		return snap, nil
	default:
		return nil, fmt.Errorf("unknown data backend %q", cfg.DataBackend)
	}
}
