package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/khedhrije/kingdom-dashboard/internal/bootstrap"
	"github.com/khedhrije/kingdom-dashboard/internal/configuration"
	"github.com/khedhrije/kingdom-dashboard/pkg/logger"
)

// Build metadata, overridable with -ldflags "-X main.version=...".
var (
	version  = ""
	revision = ""
	builtAt  = ""
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := configuration.Load()
	if err != nil {
		return err
	}
	applyBuildInfo(cfg)

	appLogger, err := logger.New(cfg.LogConfig.Level, cfg.LogConfig.Format, os.Stdout)
	if err != nil {
		return err
	}
	slog.SetDefault(appLogger)

	app, err := bootstrap.InitBootstrap(cfg, appLogger)
	if err != nil {
		return err
	}

	// Graceful shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return app.Run(ctx)
}

// applyBuildInfo lets -ldflags values win over the environment defaults.
func applyBuildInfo(cfg *configuration.AppConfig) {
	if version != "" {
		cfg.AppVersion = version
	}
	if revision != "" {
		cfg.AppRevision = revision
	}
	if builtAt != "" {
		cfg.AppBuiltAt = builtAt
	}
}
