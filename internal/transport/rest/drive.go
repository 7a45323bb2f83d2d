package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
	"github.com/heartmarshall/yarnstash-backend/internal/service/drive"
)

type driveService interface {
	AuthURL(ctx context.Context) (string, error)
	Connect(ctx context.Context, code, state string) (*drive.ConnectResult, error)
	Disconnect(ctx context.Context) error
	Status(ctx context.Context) (*drive.Status, error)
	UploadFile(ctx context.Context, req domain.UploadRequest) (domain.UploadResult, error)
	DownloadFile(ctx context.Context, fileID string) ([]byte, error)
	DeleteFile(ctx context.Context, fileID string) error
	CreateFolder(ctx context.Context, name, parentID string) (string, error)
	ListFolders(ctx context.Context) ([]drive.Folder, error)
	SyncHistory(ctx context.Context, limit, offset int) (*drive.SyncHistory, error)
}

// DriveHandler serves the /drive connection and file endpoints.
type DriveHandler struct {
	svc         driveService
	frontendURL string
	maxUpload   int64
	log         *slog.Logger
}

// NewDriveHandler creates a DriveHandler. The OAuth callback redirects to
// frontendURL; maxUpload bounds multipart request bodies.
func NewDriveHandler(svc driveService, frontendURL string, maxUpload int64, logger *slog.Logger) *DriveHandler {
	return &DriveHandler{
		svc:         svc,
		frontendURL: strings.TrimRight(frontendURL, "/"),
		maxUpload:   maxUpload,
		log:         logger.With("handler", "drive"),
	}
}

// Connect handles POST /drive/connect.
func (h *DriveHandler) Connect(w http.ResponseWriter, r *http.Request) {
	authURL, err := h.svc.AuthURL(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"authUrl": authURL})
}

// Callback handles GET /drive/callback?code&state. It always ends in a
// redirect to the frontend settings page with the outcome in the query.
func (h *DriveHandler) Callback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if reason := q.Get("error"); reason != "" {
		h.log.WarnContext(r.Context(), "drive consent denied", slog.String("reason", reason))
		h.redirect(w, r, "error", reason)
		return
	}

	if _, err := h.svc.Connect(r.Context(), q.Get("code"), q.Get("state")); err != nil {
		h.log.WarnContext(r.Context(), "drive connect failed", slog.String("error", err.Error()))
		h.redirect(w, r, "error", "connect_failed")
		return
	}
	h.redirect(w, r, "connected", "")
}

func (h *DriveHandler) redirect(w http.ResponseWriter, r *http.Request, outcome, reason string) {
	v := url.Values{"drive": {outcome}}
	if reason != "" {
		v.Set("reason", reason)
	}
	http.Redirect(w, r, h.frontendURL+"/settings?"+v.Encode(), http.StatusFound)
}

// Disconnect handles DELETE /drive/disconnect.
func (h *DriveHandler) Disconnect(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Disconnect(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "disconnected"})
}

// Status handles GET /drive/status.
func (h *DriveHandler) Status(w http.ResponseWriter, r *http.Request) {
	status, err := h.svc.Status(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

// Upload handles POST /drive/upload with a multipart "file" part and an
// optional "folderId" field.
func (h *DriveHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if !parseMultipart(w, r, h.maxUpload) {
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file part")
		return
	}
	content, err := readPart(file)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.svc.UploadFile(r.Context(), domain.UploadRequest{
		Content:  content,
		Name:     header.Filename,
		MimeType: partType(header),
		FolderID: r.FormValue("folderId"),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

// Download handles GET /drive/download/{fileId}.
func (h *DriveHandler) Download(w http.ResponseWriter, r *http.Request) {
	content, err := h.svc.DownloadFile(r.Context(), r.PathValue("fileId"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	w.Write(content) //nolint:errcheck
}

// Delete handles DELETE /drive/delete/{fileId}.
func (h *DriveHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteFile(r.Context(), r.PathValue("fileId")); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type createFolderRequest struct {
	Name     string `json:"name"`
	ParentID string `json:"parentId"`
}

// CreateFolder handles POST /drive/folders.
func (h *DriveHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	var req createFolderRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	id, err := h.svc.CreateFolder(r.Context(), req.Name, req.ParentID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"folderId": id})
}

// ListFolders handles GET /drive/folders.
func (h *DriveHandler) ListFolders(w http.ResponseWriter, r *http.Request) {
	folders, err := h.svc.ListFolders(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"folders": folders})
}

// SyncLog handles GET /drive/sync-log?limit&offset.
func (h *DriveHandler) SyncLog(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	history, err := h.svc.SyncHistory(r.Context(), limit, offset)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, history)
}

func readPart(f multipart.File) ([]byte, error) {
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		return nil, domain.NewValidationError("file", "unreadable upload")
	}
	return content, nil
}

func partType(h *multipart.FileHeader) string {
	if ct := h.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// parseMultipart reads a multipart body of at most limit bytes. It writes
// the error response itself and reports whether the handler may go on.
func parseMultipart(w http.ResponseWriter, r *http.Request, limit int64) bool {
	if r.ContentLength > limit {
		writeError(w, http.StatusRequestEntityTooLarge, "upload too large")
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := r.ParseMultipartForm(limit); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "upload too large")
		} else {
			writeError(w, http.StatusBadRequest, "invalid multipart body")
		}
		return false
	}
	return true
}
