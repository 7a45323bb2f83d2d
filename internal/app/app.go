package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/yarnstash-backend/internal/adapter/postgres"
	"github.com/heartmarshall/yarnstash-backend/internal/config"
	"github.com/heartmarshall/yarnstash-backend/internal/transport/middleware"
	"github.com/heartmarshall/yarnstash-backend/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, migrates the
// database, wires the services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("drive_enabled", cfg.Drive.Enabled()),
	)

	if err := Migrate(ctx, cfg.Database.DSN, logger); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	svcs := NewServices(cfg, pool, logger)

	limiter := middleware.NewRateLimiter(5 * time.Minute)
	defer limiter.Stop()

	mux := http.NewServeMux()
	rest.NewRouter(mux, rest.Handlers{
		Health:    rest.NewHealthHandler(Version, map[string]rest.Pinger{"database": pool}),
		Activity:  rest.NewActivityHandler(svcs.Activity, logger),
		Dashboard: rest.NewDashboardHandler(svcs.Dashboard, logger),
		Inventory: rest.NewInventoryHandler(svcs.Inventory, logger),
		Drive:     rest.NewDriveHandler(svcs.Drive, cfg.Drive.FrontendURL, cfg.Backup.MaxUploadBytes, logger),
		Backup:    rest.NewBackupHandler(svcs.Backup, cfg.Backup.DefaultKeepCount, cfg.Backup.MaxUploadBytes, logger),
		Shopping:  rest.NewShoppingHandler(svcs.Shopping, logger),
	}, rest.Guards{
		Protect:  middleware.RequireUser,
		Throttle: limiter.Limit(cfg.RateLimit.BackupPerMinute),
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CORS(cfg.CORS),
		middleware.Auth(svcs.JWT),
		middleware.Logger(logger),
	)(mux)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
