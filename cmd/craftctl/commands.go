package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/yarnstash-backend/internal/adapter/postgres"
	"github.com/heartmarshall/yarnstash-backend/internal/app"
	"github.com/heartmarshall/yarnstash-backend/internal/config"
)

// env is populated by the root command before any subcommand runs.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:           "craftctl",
		Short:         "Operate the yarnstash backend",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			e.cfg = cfg
			e.logger = app.NewLogger(cfg.Log)
			return nil
		},
	}

	root.AddCommand(newMigrateCmd(e), newBackupCmd(e), newTokenCmd(e))
	return root
}

func newMigrateCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database schema migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Migrate(cmd.Context(), e.cfg.Database.DSN, e.logger)
		},
	}, &cobra.Command{
		Use:   "status",
		Short: "List migrations and whether they are applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			states, err := app.MigrationStatus(cmd.Context(), e.cfg.Database.DSN)
			if err != nil {
				return err
			}
			printMigrations(cmd.OutOrStdout(), states)
			return nil
		},
	})
	return cmd
}

func printMigrations(w io.Writer, states []app.MigrationState) {
	for _, s := range states {
		mark := "pending"
		if s.Applied {
			mark = "applied"
		}
		fmt.Fprintf(w, "%05d  %-8s %s\n", s.Version, mark, s.Source)
	}
}

func newBackupCmd(e *env) *cobra.Command {
	var (
		userFlag string
		keep     int
	)

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Create or prune Google Drive backups for a user",
	}
	cmd.PersistentFlags().StringVar(&userFlag, "user", "", "user id (required)")
	_ = cmd.MarkPersistentFlagRequired("user")

	create := &cobra.Command{
		Use:   "create",
		Short: "Upload a full inventory snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := parseUser(userFlag)
			if err != nil {
				return err
			}
			pool, err := postgres.NewPool(cmd.Context(), e.cfg.Database)
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}
			defer pool.Close()

			res, err := app.NewServices(e.cfg, pool, e.logger).Backup.CreateFullBackup(cmd.Context(), userID)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}

	cleanup := &cobra.Command{
		Use:   "cleanup",
		Short: "Delete all but the newest backups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := parseUser(userFlag)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("keep") {
				keep = e.cfg.Backup.DefaultKeepCount
			}
			pool, err := postgres.NewPool(cmd.Context(), e.cfg.Database)
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}
			defer pool.Close()

			res, err := app.NewServices(e.cfg, pool, e.logger).Backup.CleanupOldBackups(cmd.Context(), userID, keep)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	cleanup.Flags().IntVar(&keep, "keep", 0, "number of backups to keep (default from config)")

	cmd.AddCommand(create, cleanup)
	return cmd
}

func newTokenCmd(e *env) *cobra.Command {
	var userFlag string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue API access tokens",
	}

	issue := &cobra.Command{
		Use:   "issue",
		Short: "Print a signed access token for a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := parseUser(userFlag)
			if err != nil {
				return err
			}
			token, err := app.NewJWTManager(e.cfg.Auth).GenerateAccessToken(userID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	issue.Flags().StringVar(&userFlag, "user", "", "user id (required)")
	_ = issue.MarkFlagRequired("user")

	cmd.AddCommand(issue)
	return cmd
}

func parseUser(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid --user %q: %w", s, err)
	}
	return id, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
