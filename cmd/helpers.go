package cmd

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mindcare-edu/mindcare/internal/config"
	"github.com/mindcare-edu/mindcare/internal/kv"
	"github.com/mindcare-edu/mindcare/internal/logging"
	"github.com/mindcare-edu/mindcare/internal/mood"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `mindcare init` to create a config file", err)
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logging.New(cfg.LogLevel, cfg.Environment == config.EnvProduction)
}

// openTracker opens the configured slot store and loads the mood history from it.
// ephemeral forces the in-memory backend. The caller closes the returned store.
func openTracker(ctx context.Context, cfg *config.Config, ephemeral bool, logger *zap.Logger, opts ...mood.Option) (*mood.Tracker, kv.Store, error) {
	backend := cfg.Storage.Backend
	if ephemeral {
		backend = config.StorageMemory
	}
	store, err := kv.Open(backend, cfg.DataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s storage: %w", backend, err)
	}
	logger.Debug("storage opened", zap.String("backend", string(backend)), zap.String("data_dir", cfg.DataDir))

	repo := mood.NewSlotRepository(store, cfg.Storage.Slot, logger)
	opts = append([]mood.Option{mood.WithLogger(logger)}, opts...)
	return mood.NewTracker(ctx, repo, opts...), store, nil
}
