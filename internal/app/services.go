package app

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/yarnstash-backend/internal/adapter/drive"
	"github.com/heartmarshall/yarnstash-backend/internal/adapter/postgres"
	"github.com/heartmarshall/yarnstash-backend/internal/adapter/postgres/pattern"
	"github.com/heartmarshall/yarnstash-backend/internal/adapter/postgres/progress"
	"github.com/heartmarshall/yarnstash-backend/internal/adapter/postgres/project"
	"github.com/heartmarshall/yarnstash-backend/internal/adapter/postgres/shopping"
	"github.com/heartmarshall/yarnstash-backend/internal/adapter/postgres/synclog"
	"github.com/heartmarshall/yarnstash-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/yarnstash-backend/internal/adapter/postgres/yarn"
	"github.com/heartmarshall/yarnstash-backend/internal/auth"
	"github.com/heartmarshall/yarnstash-backend/internal/config"
	"github.com/heartmarshall/yarnstash-backend/internal/domain"
	activitysvc "github.com/heartmarshall/yarnstash-backend/internal/service/activity"
	backupsvc "github.com/heartmarshall/yarnstash-backend/internal/service/backup"
	dashboardsvc "github.com/heartmarshall/yarnstash-backend/internal/service/dashboard"
	drivesvc "github.com/heartmarshall/yarnstash-backend/internal/service/drive"
	inventorysvc "github.com/heartmarshall/yarnstash-backend/internal/service/inventory"
	"github.com/heartmarshall/yarnstash-backend/internal/service/objectstore"
	shoppingsvc "github.com/heartmarshall/yarnstash-backend/internal/service/shopping"
)

// Services is the wired service layer shared by the server and the
// command line tools.
type Services struct {
	Activity  *activitysvc.Service
	Backup    *backupsvc.Service
	Dashboard *dashboardsvc.Service
	Drive     *drivesvc.Service
	Inventory *inventorysvc.Service
	Shopping  *shoppingsvc.Service
	Stores    *objectstore.Provider
	Users     *user.Repo
	JWT       *auth.JWTManager
}

// NewJWTManager builds the token manager from auth settings.
func NewJWTManager(cfg config.AuthConfig) *auth.JWTManager {
	return auth.NewJWTManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTokenTTL)
}

// NewServices builds repositories and services on top of pool.
func NewServices(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) *Services {
	txm := postgres.NewTxManager(pool)

	yarnRepo := yarn.New(pool)
	patternRepo := pattern.New(pool)
	projectRepo := project.New(pool)
	progressRepo := progress.New(pool)
	userRepo := user.New(pool)
	syncRepo := synclog.New(pool)
	shoppingRepo := shopping.New(pool)

	jwtMgr := NewJWTManager(cfg.Auth)

	connector := drive.NewConnector(cfg.Drive, logger)
	stores := objectstore.NewProvider(logger, userRepo, syncRepo,
		func(ctx context.Context, creds domain.DriveCredentials) (objectstore.Backend, error) {
			c, err := connector.Connect(ctx, creds)
			if err != nil {
				return nil, err
			}
			return c, nil
		},
		cfg.Drive.CallTimeout,
	)

	backupStores := func(ctx context.Context, userID uuid.UUID) (backupsvc.Store, error) {
		c, err := stores.ForUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	driveStores := func(ctx context.Context, userID uuid.UUID) (drivesvc.Store, error) {
		c, err := stores.ForUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		return c, nil
	}

	return &Services{
		Activity: activitysvc.NewService(logger, yarnRepo, patternRepo, projectRepo, progressRepo, userRepo,
			activitysvc.Options{
				DefaultLimit: cfg.Activity.DefaultLimit,
				MaxLimit:     cfg.Activity.MaxLimit,
			}),
		Backup: backupsvc.NewService(logger, yarnRepo, patternRepo, projectRepo, progressRepo, syncRepo, backupStores,
			backupsvc.Options{
				RootFolder:     cfg.Drive.RootFolder,
				BackupsFolder:  cfg.Backup.FolderName,
				PatternsFolder: cfg.Backup.PatternsFolder,
			}),
		Dashboard: dashboardsvc.NewService(logger, yarnRepo, patternRepo, projectRepo, progressRepo),
		Drive: drivesvc.NewService(logger, connector, jwtMgr, userRepo, syncRepo, driveStores,
			drivesvc.Options{
				RootFolder: cfg.Drive.RootFolder,
				Subfolders: cfg.Drive.Subfolders(),
			}),
		Inventory: inventorysvc.NewService(logger, yarnRepo, patternRepo, projectRepo, progressRepo, txm),
		Shopping:  shoppingsvc.NewService(logger, shoppingRepo, yarnRepo, txm),
		Stores:    stores,
		Users:     userRepo,
		JWT:       jwtMgr,
	}
}
