package backup

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
)

// PatternFile is one pattern document to store.
type PatternFile struct {
	PatternID uuid.UUID
	Filename  string
	MimeType  string
	Content   []byte
}

// BackupPatterns uploads pattern files into the user's Patterns folder.
// Each file is handled on its own: a failure is recorded in the result
// and the batch continues. Successful uploads are linked to the pattern row.
func (s *Service) BackupPatterns(ctx context.Context, userID uuid.UUID, files []PatternFile) (*domain.PatternBackupResult, error) {
	if err := validatePatternFiles(files); err != nil {
		return nil, err
	}

	started := s.now()
	result, err := s.backupPatterns(ctx, userID, files)

	entry := &domain.SyncLogEntry{
		UserID:     userID,
		SyncType:   domain.SyncTypePatternBackup,
		EntityType: "pattern",
		Action:     "upload",
	}
	outcome := err
	if err == nil && len(result.Failed) > 0 {
		outcome = fmt.Errorf("%d of %d pattern uploads failed", len(result.Failed), len(files))
	}
	if err == nil {
		var total int64
		for _, u := range result.Uploaded {
			total += u.Size
		}
		entry.ByteSize = &total
	}
	s.record(ctx, entry, started, outcome)

	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "pattern backup finished",
		slog.String("user_id", userID.String()),
		slog.Int("uploaded", len(result.Uploaded)),
		slog.Int("failed", len(result.Failed)),
	)
	return result, nil
}

func (s *Service) backupPatterns(ctx context.Context, userID uuid.UUID, files []PatternFile) (*domain.PatternBackupResult, error) {
	ids := make([]uuid.UUID, 0, len(files))
	for _, f := range files {
		ids = append(ids, f.PatternID)
	}

	owned, err := s.patterns.ListByIDs(ctx, userID, ids)
	if err != nil {
		return nil, fmt.Errorf("list patterns: %w", err)
	}
	known := make(map[uuid.UUID]bool, len(owned))
	for _, p := range owned {
		known[p.ID] = true
	}

	store, err := s.stores(ctx, userID)
	if err != nil {
		return nil, err
	}

	folderID, err := s.folder(ctx, store, s.opts.PatternsFolder)
	if err != nil {
		return nil, err
	}

	result := &domain.PatternBackupResult{Uploaded: []domain.PatternUpload{}}
	fail := func(f PatternFile, err error) {
		result.Failed = append(result.Failed, domain.BatchFailure{
			ID:      f.PatternID.String(),
			Name:    f.Filename,
			Message: err.Error(),
		})
	}

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !known[f.PatternID] {
			fail(f, fmt.Errorf("pattern %s: %w", f.PatternID, domain.ErrNotFound))
			continue
		}

		mime := f.MimeType
		if mime == "" {
			mime = "application/octet-stream"
		}
		res, err := store.Upload(ctx, domain.UploadRequest{
			Content:  f.Content,
			Name:     f.Filename,
			MimeType: mime,
			FolderID: folderID,
		})
		if err != nil {
			fail(f, err)
			continue
		}

		if err := s.patterns.SetDriveFile(ctx, userID, f.PatternID, res); err != nil {
			fail(f, fmt.Errorf("link uploaded file: %w", err))
			continue
		}
		result.Uploaded = append(result.Uploaded, domain.PatternUpload{PatternID: f.PatternID, UploadResult: res})
	}
	return result, nil
}

func validatePatternFiles(files []PatternFile) error {
	if len(files) == 0 {
		return domain.NewValidationError("files", "at least one file required")
	}

	var errs []domain.FieldError
	for i, f := range files {
		field := fmt.Sprintf("files[%d]", i)
		if f.PatternID == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: field + ".pattern_id", Message: "required"})
		}
		if strings.TrimSpace(f.Filename) == "" {
			errs = append(errs, domain.FieldError{Field: field + ".filename", Message: "required"})
		}
		if len(f.Content) == 0 {
			errs = append(errs, domain.FieldError{Field: field + ".content", Message: "empty file"})
		}
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
