package cmd

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ziadkadry99/refhub/internal/config"
	"github.com/ziadkadry99/refhub/internal/logging"
	"github.com/ziadkadry99/refhub/internal/registry"
	"github.com/ziadkadry99/refhub/internal/view"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `refhub init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the zap logger from the log settings. --verbose forces
// debug level.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	lc := logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format}
	if verbose {
		lc.Level = "debug"
	}
	logger, err := logging.New(lc)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	return logger, nil
}

// env bundles what most commands need.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	reg    *registry.Registry
	policy view.Policy
}

// loadEnv loads config, logger, search policy and every hub under hubs_dir.
func loadEnv(ctx context.Context) (*env, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}
	policy, err := cfg.Policy()
	if err != nil {
		return nil, fmt.Errorf("search policy: %w", err)
	}
	reg, err := registry.Load(ctx, registry.Options{
		Dir:     cfg.HubsDir,
		Include: cfg.Include,
		Exclude: cfg.Exclude,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("loading hubs from %s: %w", cfg.HubsDir, err)
	}
	return &env{cfg: cfg, logger: logger, reg: reg, policy: policy}, nil
}

// lookupHub fetches a hub and lists the known names when it is missing.
func lookupHub(reg *registry.Registry, name string) (*registry.Hub, error) {
	h, err := reg.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w (known hubs: %s)", err, strings.Join(reg.Names(), ", "))
	}
	return h, nil
}
