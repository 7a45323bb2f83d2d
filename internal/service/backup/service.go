package backup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
)

type yarnRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.YarnStock, error)
}

type patternRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Pattern, error)
	ListByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.Pattern, error)
	SetDriveFile(ctx context.Context, userID, patternID uuid.UUID, res domain.UploadResult) error
}

type projectRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Project, error)
	ListYarnUsageByUser(ctx context.Context, userID uuid.UUID) ([]domain.ProjectYarnUsage, error)
}

type progressRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ProjectProgress, error)
}

type syncLogger interface {
	Create(ctx context.Context, e *domain.SyncLogEntry) error
}

// Store is the audited object store client of one user.
type Store interface {
	RootFolderID() string
	EnsureFolder(ctx context.Context, name, parentID string) (string, error)
	Upload(ctx context.Context, req domain.UploadRequest) (domain.UploadResult, error)
	Delete(ctx context.Context, objectID string) error
	List(ctx context.Context, folderID string) ([]domain.ObjectMetadata, error)
}

// StoreFunc returns the object store client for a user.
type StoreFunc func(ctx context.Context, userID uuid.UUID) (Store, error)

// Options names the folders backups are written to.
type Options struct {
	RootFolder     string
	BackupsFolder  string
	PatternsFolder string
}

// Service assembles snapshots, uploads them and enforces retention.
type Service struct {
	yarn     yarnRepo
	patterns patternRepo
	projects projectRepo
	progress progressRepo
	logs     syncLogger
	stores   StoreFunc
	opts     Options
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new backup service.
func NewService(
	log *slog.Logger,
	yarn yarnRepo,
	patterns patternRepo,
	projects projectRepo,
	progress progressRepo,
	logs syncLogger,
	stores StoreFunc,
	opts Options,
) *Service {
	return &Service{
		yarn:     yarn,
		patterns: patterns,
		projects: projects,
		progress: progress,
		logs:     logs,
		stores:   stores,
		opts:     opts,
		log:      log.With("service", "backup"),
		now:      time.Now,
	}
}

// folder resolves a subfolder of the user's application folder, creating
// both when missing.
func (s *Service) folder(ctx context.Context, store Store, name string) (string, error) {
	root := store.RootFolderID()
	if root == "" {
		var err error
		root, err = store.EnsureFolder(ctx, s.opts.RootFolder, "")
		if err != nil {
			return "", fmt.Errorf("resolve %q folder: %w", s.opts.RootFolder, err)
		}
	}

	id, err := store.EnsureFolder(ctx, name, root)
	if err != nil {
		return "", fmt.Errorf("resolve %q folder: %w", name, err)
	}
	return id, nil
}

// record writes a summary sync log entry. Failures are logged only.
func (s *Service) record(ctx context.Context, e *domain.SyncLogEntry, started time.Time, opErr error) {
	e.DurationMs = s.now().Sub(started).Milliseconds()
	e.Status = domain.SyncStatusSuccess
	if opErr != nil {
		e.Status = domain.SyncStatusError
		msg := opErr.Error()
		e.ErrorMessage = &msg
	}

	if err := s.logs.Create(context.WithoutCancel(ctx), e); err != nil {
		s.log.ErrorContext(ctx, "sync log write failed",
			slog.String("user_id", e.UserID.String()),
			slog.String("sync_type", e.SyncType.String()),
			slog.String("error", err.Error()),
		)
	}
}
