package backup

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
)

// DefaultKeepCount is used when the caller does not choose one.
const DefaultKeepCount = 10

// CleanupOldBackups keeps the keepCount newest backups of the user and
// deletes the rest, one at a time. Deleted counts objects that are gone
// afterwards (an object already missing counts); other delete failures are
// collected in Failed and do not stop the run. keepCount below zero is
// treated as zero.
func (s *Service) CleanupOldBackups(ctx context.Context, userID uuid.UUID, keepCount int) (domain.RetentionResult, error) {
	keepCount = max(keepCount, 0)

	store, err := s.stores(ctx, userID)
	if err != nil {
		return domain.RetentionResult{}, err
	}

	folderID, err := s.folder(ctx, store, s.opts.BackupsFolder)
	if err != nil {
		return domain.RetentionResult{}, err
	}

	objs, err := store.List(ctx, folderID)
	if err != nil {
		return domain.RetentionResult{}, fmt.Errorf("list backups: %w", err)
	}

	backups := filterBackups(userID, objs)
	sortNewestFirst(backups)

	keep := min(keepCount, len(backups))
	result := domain.RetentionResult{Kept: keep}

	for _, obj := range backups[keep:] {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		err := store.Delete(ctx, obj.ID)
		switch {
		case err == nil, errors.Is(err, domain.ErrNotFound):
			result.Deleted++
		default:
			s.log.WarnContext(ctx, "delete backup failed",
				slog.String("user_id", userID.String()),
				slog.String("file_id", obj.ID),
				slog.String("filename", obj.Name),
				slog.String("error", err.Error()),
			)
			result.Failed = append(result.Failed, domain.BatchFailure{
				ID:      obj.ID,
				Name:    obj.Name,
				Message: err.Error(),
			})
		}
	}

	s.log.InfoContext(ctx, "backup retention applied",
		slog.String("user_id", userID.String()),
		slog.Int("kept", result.Kept),
		slog.Int("deleted", result.Deleted),
		slog.Int("failed", len(result.Failed)),
	)
	return result, nil
}

// ListBackups returns the objects in the user's Backups folder, newest first.
func (s *Service) ListBackups(ctx context.Context, userID uuid.UUID) ([]domain.ObjectMetadata, error) {
	store, err := s.stores(ctx, userID)
	if err != nil {
		return nil, err
	}

	folderID, err := s.folder(ctx, store, s.opts.BackupsFolder)
	if err != nil {
		return nil, err
	}

	objs, err := store.List(ctx, folderID)
	if err != nil {
		return nil, fmt.Errorf("list backups: %w", err)
	}
	sortNewestFirst(objs)
	return objs, nil
}

func filterBackups(userID uuid.UUID, objs []domain.ObjectMetadata) []domain.ObjectMetadata {
	out := make([]domain.ObjectMetadata, 0, len(objs))
	for _, o := range objs {
		if IsBackupFile(userID, o.Name) {
			out = append(out, o)
		}
	}
	return out
}

// sortNewestFirst orders by creation time descending. Names carry the
// timestamp, so equal creation times fall back to name descending.
func sortNewestFirst(objs []domain.ObjectMetadata) {
	slices.SortStableFunc(objs, func(a, b domain.ObjectMetadata) int {
		if c := b.CreatedTime.Compare(a.CreatedTime); c != 0 {
			return c
		}
		return cmp.Compare(b.Name, a.Name)
	})
}
