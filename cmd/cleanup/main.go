// Command cleanup applies backup retention to every user with a connected
// Google Drive. It is intended to be invoked by an external cron job, not as
// an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error (including partial failure).
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/yarnstash-backend/internal/adapter/postgres"
	"github.com/heartmarshall/yarnstash-backend/internal/app"
	"github.com/heartmarshall/yarnstash-backend/internal/config"
	"github.com/heartmarshall/yarnstash-backend/internal/domain"
)

type userLister interface {
	ListDriveConnected(ctx context.Context) ([]uuid.UUID, error)
}

type retainer interface {
	CleanupOldBackups(ctx context.Context, userID uuid.UUID, keepCount int) (domain.RetentionResult, error)
}

type sweepResult struct {
	Users   int
	Deleted int
	Failed  int
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svcs := app.NewServices(cfg, pool, logger)

	res, err := sweep(ctx, svcs.Users, svcs.Backup, cfg.Backup.DefaultKeepCount, logger)
	if err != nil {
		logger.Error("backup retention failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("backup retention completed",
		slog.Int("users", res.Users),
		slog.Int("deleted", res.Deleted),
		slog.Int("failed", res.Failed),
		slog.Int("keep_count", cfg.Backup.DefaultKeepCount),
	)
	if res.Failed > 0 {
		os.Exit(1)
	}
}

// sweep runs retention for each connected user. A failing user is logged
// and counted; the sweep carries on with the rest.
func sweep(ctx context.Context, users userLister, backups retainer, keepCount int, logger *slog.Logger) (sweepResult, error) {
	ids, err := users.ListDriveConnected(ctx)
	if err != nil {
		return sweepResult{}, err
	}

	res := sweepResult{Users: len(ids)}
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		r, err := backups.CleanupOldBackups(ctx, id, keepCount)
		if err != nil {
			res.Failed++
			logger.WarnContext(ctx, "retention failed for user",
				slog.String("user_id", id.String()),
				slog.String("error", err.Error()),
			)
			continue
		}

		res.Deleted += r.Deleted
		res.Failed += len(r.Failed)
		logger.InfoContext(ctx, "retention applied",
			slog.String("user_id", id.String()),
			slog.Int("kept", r.Kept),
			slog.Int("deleted", r.Deleted),
		)
	}
	return res, nil
}
