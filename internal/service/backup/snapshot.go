package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
)

const (
	filePrefix   = "backup_"
	fileExt      = ".json"
	fileMimeType = "application/json"

	// isoMillis matches the ISO-8601 UTC form with milliseconds.
	isoMillis = "2006-01-02T15:04:05.000Z07:00"
)

// AssembleSnapshot reads every yarn, pattern and project row owned by the
// user in parallel. BackupDate is taken before any read starts.
func (s *Service) AssembleSnapshot(ctx context.Context, userID uuid.UUID) (*domain.Snapshot, error) {
	snap := &domain.Snapshot{
		BackupDate: s.now().UTC(),
		UserID:     userID,
	}

	var (
		usage    []domain.ProjectYarnUsage
		progress []domain.ProjectProgress
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.yarn.ListByUser(gctx, userID)
		if err != nil {
			return fmt.Errorf("list yarn: %w", err)
		}
		snap.Entities.YarnInventory = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.patterns.ListByUser(gctx, userID)
		if err != nil {
			return fmt.Errorf("list patterns: %w", err)
		}
		snap.Entities.Patterns = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.projects.ListByUser(gctx, userID)
		if err != nil {
			return fmt.Errorf("list projects: %w", err)
		}
		snap.Entities.Projects = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.projects.ListYarnUsageByUser(gctx, userID)
		if err != nil {
			return fmt.Errorf("list yarn usage: %w", err)
		}
		usage = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.progress.ListByUser(gctx, userID)
		if err != nil {
			return fmt.Errorf("list progress: %w", err)
		}
		progress = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	attachProjectChildren(snap.Entities.Projects, usage, progress)
	ensureNonNil(&snap.Entities)
	return snap, nil
}

// CreateFullBackup uploads a JSON snapshot into the user's Backups folder.
// A full_backup sync log entry records the outcome either way; nothing is
// rolled back on failure.
func (s *Service) CreateFullBackup(ctx context.Context, userID uuid.UUID) (domain.UploadResult, error) {
	started := s.now()
	entry := &domain.SyncLogEntry{
		UserID:     userID,
		SyncType:   domain.SyncTypeFullBackup,
		EntityType: "backup",
		Action:     "create",
	}

	res, name, err := s.createFullBackup(ctx, userID)
	if name != "" {
		entry.Path = &name
	}
	if err == nil {
		entry.ExternalObjectID = &res.ObjectID
		size := res.Size
		entry.ByteSize = &size
	}
	s.record(ctx, entry, started, err)

	if err != nil {
		s.log.ErrorContext(ctx, "full backup failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return domain.UploadResult{}, err
	}

	s.log.InfoContext(ctx, "full backup created",
		slog.String("user_id", userID.String()),
		slog.String("file_id", res.ObjectID),
		slog.String("filename", name),
	)
	return res, nil
}

func (s *Service) createFullBackup(ctx context.Context, userID uuid.UUID) (domain.UploadResult, string, error) {
	store, err := s.stores(ctx, userID)
	if err != nil {
		return domain.UploadResult{}, "", err
	}

	snap, err := s.AssembleSnapshot(ctx, userID)
	if err != nil {
		return domain.UploadResult{}, "", fmt.Errorf("assemble snapshot: %w", err)
	}

	body, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return domain.UploadResult{}, "", fmt.Errorf("marshal snapshot: %w", err)
	}

	name := FileName(userID, snap.BackupDate)

	folderID, err := s.folder(ctx, store, s.opts.BackupsFolder)
	if err != nil {
		return domain.UploadResult{}, name, err
	}

	res, err := store.Upload(ctx, domain.UploadRequest{
		Content:  body,
		Name:     name,
		MimeType: fileMimeType,
		FolderID: folderID,
	})
	if err != nil {
		return domain.UploadResult{}, name, fmt.Errorf("upload backup: %w", err)
	}
	return res, name, nil
}

// FileName returns backup_{userID}_{timestamp}.json where timestamp is the
// ISO-8601 UTC time with ':' and '.' replaced by '-'.
func FileName(userID uuid.UUID, at time.Time) string {
	ts := at.UTC().Format(isoMillis)
	ts = strings.NewReplacer(":", "-", ".", "-").Replace(ts)
	return filePrefix + userID.String() + "_" + ts + fileExt
}

// IsBackupFile reports whether name follows the user's backup naming.
func IsBackupFile(userID uuid.UUID, name string) bool {
	return strings.HasPrefix(name, filePrefix+userID.String()+"_") && strings.HasSuffix(name, fileExt)
}

func attachProjectChildren(projects []domain.Project, usage []domain.ProjectYarnUsage, progress []domain.ProjectProgress) {
	idx := make(map[uuid.UUID]int, len(projects))
	for i := range projects {
		idx[projects[i].ID] = i
	}
	for _, u := range usage {
		if i, ok := idx[u.ProjectID]; ok {
			projects[i].YarnUsage = append(projects[i].YarnUsage, u)
		}
	}
	for _, p := range progress {
		if i, ok := idx[p.ProjectID]; ok {
			projects[i].Progress = append(projects[i].Progress, p)
		}
	}
}

func ensureNonNil(e *domain.SnapshotEntities) {
	if e.YarnInventory == nil {
		e.YarnInventory = []domain.YarnStock{}
	}
	if e.Patterns == nil {
		e.Patterns = []domain.Pattern{}
	}
	if e.Projects == nil {
		e.Projects = []domain.Project{}
	}
}
