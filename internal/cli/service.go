package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/bilingua"
	"github.com/aretw0/bilingua/internal/config"
	"github.com/aretw0/bilingua/internal/logging"
	"github.com/aretw0/bilingua/internal/metrics"
	"github.com/spf13/pflag"
)

// Runtime bundles everything a command needs once configuration is loaded.
type Runtime struct {
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Collectors
	Service *bilingua.Service
}

// Close releases the service backend.
func (r *Runtime) Close() error {
	return r.Service.Close()
}

// Open loads configuration for dir (flags override it), builds the logger and
// metrics, and opens the books. Any error means the command must not proceed.
func Open(ctx context.Context, dir string, flags *pflag.FlagSet) (*Runtime, error) {
	cfg, err := config.Load(dir, flags)
	if err != nil {
		return nil, err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log_level: %w", err)
	}
	logger := logging.New(level).With("dir", cfg.Dir)

	collectors := metrics.New()
	svc, err := bilingua.NewContext(ctx, cfg.Dir,
		bilingua.WithConfig(cfg),
		bilingua.WithLogger(logger),
		bilingua.WithHooks(collectors.Hooks(logger)),
	)
	if err != nil {
		return nil, err
	}

	return &Runtime{
		Config:  cfg,
		Logger:  logger,
		Metrics: collectors,
		Service: svc,
	}, nil
}
