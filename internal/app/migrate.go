package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/yarnstash-backend/migrations"
)

// MigrationState is the applied state of one migration.
type MigrationState struct {
	Version int64
	Source  string
	Applied bool
}

func withMigrator(ctx context.Context, dsn string, fn func(*goose.Provider) error) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}
	return fn(provider)
}

// Migrate applies every pending migration.
func Migrate(ctx context.Context, dsn string, logger *slog.Logger) error {
	return withMigrator(ctx, dsn, func(p *goose.Provider) error {
		results, err := p.Up(ctx)
		if err != nil {
			return fmt.Errorf("goose up: %w", err)
		}
		for _, r := range results {
			logger.InfoContext(ctx, "migration applied",
				slog.Int64("version", r.Source.Version),
				slog.String("duration", r.Duration.String()),
			)
		}
		return nil
	})
}

// MigrationStatus lists every known migration and whether it is applied.
func MigrationStatus(ctx context.Context, dsn string) ([]MigrationState, error) {
	var out []MigrationState
	err := withMigrator(ctx, dsn, func(p *goose.Provider) error {
		statuses, err := p.Status(ctx)
		if err != nil {
			return fmt.Errorf("goose status: %w", err)
		}
		for _, s := range statuses {
			out = append(out, MigrationState{
				Version: s.Source.Version,
				Source:  s.Source.Path,
				Applied: s.State == goose.StateApplied,
			})
		}
		return nil
	})
	return out, err
}
