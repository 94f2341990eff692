package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/khedhrije/kingdom-dashboard/internal/configuration"
	"github.com/khedhrije/kingdom-dashboard/internal/infrastructure/postgres"
	"github.com/khedhrije/kingdom-dashboard/internal/ui/rest/handlers"
	"github.com/khedhrije/kingdom-dashboard/internal/ui/rest/router"
	"github.com/khedhrije/kingdom-dashboard/pkg/metrics"
	"github.com/khedhrije/kingdom-dashboard/pkg/monitoring"
)

const shutdownTimeout = 10 * time.Second

type Bootstrap struct {
	Config *configuration.AppConfig
	Router *gin.Engine
	Logger *slog.Logger
}

// InitBootstrap wires the store, handlers and router from cfg.
func InitBootstrap(cfg *configuration.AppConfig, log *slog.Logger) (Bootstrap, error) {
	if err := checkConfig(cfg); err != nil {
		return Bootstrap{}, err
	}
	return initBootstrap(cfg, log, postgres.NewPgxConnector(cfg.DatabaseConfig.ConnString()))
}

func checkConfig(cfg *configuration.AppConfig) error {
	if cfg == nil {
		return errors.New("configuration is nil")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration: %w", err)
	}
	return nil
}

func initBootstrap(cfg *configuration.AppConfig, log *slog.Logger, connector postgres.Connector) (Bootstrap, error) {
	if err := checkConfig(cfg); err != nil {
		return Bootstrap{}, err
	}
	if log == nil {
		log = slog.Default()
	}

	app := Bootstrap{Config: cfg, Logger: log}

	m := metrics.New("")
	store := postgres.NewKingdomStore(connector, m, log.With(slog.String("component", "kingdom-store")))

	checkOpts := monitoring.Options{
		AppName:      cfg.AppName,
		Env:          cfg.Env,
		Version:      cfg.AppVersion,
		Revision:     cfg.AppRevision,
		BuiltAt:      cfg.AppBuiltAt,
		StartTime:    time.Now(),
		DatabaseAddr: cfg.DatabaseConfig.TCPAddr(),
	}
	// query through the store only with a DSN or full credentials, else dial TCPAddr
	if _, ok := cfg.DatabaseConfig.CompleteDSN(); ok {
		checkOpts.Database = store
	}
	checks := monitoring.New(checkOpts)

	r, err := router.CreateRouter(router.Dependencies{
		Checks:   checks,
		Kingdoms: store,
		Metrics:  m,
		Logger:   log,
		Page: handlers.PageOptions{
			AppName: cfg.AppName,
			Version: cfg.AppVersion,
		},
	})
	if err != nil {
		return Bootstrap{}, err
	}
	app.Router = r

	return app, nil
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (b Bootstrap) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         b.Config.RestConfig.Addr(),
		Handler:      b.Router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		b.Logger.Info("listening",
			slog.String("addr", srv.Addr),
			slog.String("app", b.Config.AppName),
			slog.String("version", b.Config.AppVersion),
			slog.String("revision", b.Config.AppRevision),
			slog.String("env", b.Config.Env),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	b.Logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	b.Logger.Info("server exited")
	return nil
}
