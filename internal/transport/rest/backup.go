package rest

import (
	"context"
	"log/slog"
	"net/http"
	"sort"

	"github.com/google/uuid"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
	"github.com/heartmarshall/yarnstash-backend/internal/export"
	"github.com/heartmarshall/yarnstash-backend/internal/service/backup"
	"github.com/heartmarshall/yarnstash-backend/pkg/ctxutil"
)

type backupService interface {
	CreateFullBackup(ctx context.Context, userID uuid.UUID) (domain.UploadResult, error)
	BackupPatterns(ctx context.Context, userID uuid.UUID, files []backup.PatternFile) (*domain.PatternBackupResult, error)
	ListBackups(ctx context.Context, userID uuid.UUID) ([]domain.ObjectMetadata, error)
	CleanupOldBackups(ctx context.Context, userID uuid.UUID, keepCount int) (domain.RetentionResult, error)
	ExportSnapshot(ctx context.Context, userID uuid.UUID, kind export.Kind) (export.Output, string, error)
}

// BackupHandler serves the /drive/backup* endpoints.
type BackupHandler struct {
	svc       backupService
	keepCount int
	maxUpload int64
	log       *slog.Logger
}

// NewBackupHandler creates a BackupHandler. keepCount applies when a
// cleanup request does not name one.
func NewBackupHandler(svc backupService, keepCount int, maxUpload int64, logger *slog.Logger) *BackupHandler {
	return &BackupHandler{
		svc:       svc,
		keepCount: keepCount,
		maxUpload: maxUpload,
		log:       logger.With("handler", "backup"),
	}
}

func (h *BackupHandler) user(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
	}
	return userID, ok
}

// Full handles POST /drive/backup/full.
func (h *BackupHandler) Full(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.user(w, r)
	if !ok {
		return
	}

	result, err := h.svc.CreateFullBackup(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

// Snapshot handles GET /drive/backup/snapshot?format and returns the
// assembled snapshot as a download. Drive does not need to be connected.
func (h *BackupHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.user(w, r)
	if !ok {
		return
	}
	kind, err := export.ParseKind(r.URL.Query().Get("format"), export.KindJSON)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out, filename, err := h.svc.ExportSnapshot(r.Context(), userID, kind)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeAttachment(w, out, filename)
}

// Patterns handles POST /drive/backup/patterns. Every file part is one
// pattern document; the part's field name is the pattern id.
func (h *BackupHandler) Patterns(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.user(w, r)
	if !ok {
		return
	}

	if !parseMultipart(w, r, h.maxUpload) {
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	fields := make([]string, 0, len(r.MultipartForm.File))
	for field := range r.MultipartForm.File {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var files []backup.PatternFile
	for _, field := range fields {
		patternID, err := uuid.Parse(field)
		if err != nil {
			handleError(w, r, h.log, domain.NewValidationError(field, "part name must be a pattern id"))
			return
		}
		for _, fh := range r.MultipartForm.File[field] {
			f, err := fh.Open()
			if err != nil {
				handleError(w, r, h.log, domain.NewValidationError(field, "unreadable upload"))
				return
			}
			content, err := readPart(f)
			if err != nil {
				handleError(w, r, h.log, err)
				return
			}
			files = append(files, backup.PatternFile{
				PatternID: patternID,
				Filename:  fh.Filename,
				MimeType:  partType(fh),
				Content:   content,
			})
		}
	}

	result, err := h.svc.BackupPatterns(r.Context(), userID, files)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// List handles GET /drive/backups.
func (h *BackupHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.user(w, r)
	if !ok {
		return
	}

	backups, err := h.svc.ListBackups(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"backups": backups})
}

// Cleanup handles DELETE /drive/backups/cleanup?keepCount.
func (h *BackupHandler) Cleanup(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.user(w, r)
	if !ok {
		return
	}

	keep, err := queryInt(r, "keepCount", h.keepCount)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.svc.CleanupOldBackups(r.Context(), userID, keep)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
