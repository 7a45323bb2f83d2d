// Package objectstore is the audited, per-user facade over the external
// object store. Every upload and delete writes exactly one sync log entry
// whose status matches the outcome of the call.
package objectstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
	"github.com/heartmarshall/yarnstash-backend/pkg/thumbnail"
)

// Backend is the raw object store SDK surface for one authenticated user.
type Backend interface {
	CreateFolder(ctx context.Context, name, parentID string) (string, error)
	FindFolder(ctx context.Context, name, parentID string) (string, error)
	Put(ctx context.Context, req domain.UploadRequest) (domain.UploadResult, error)
	Get(ctx context.Context, id string) ([]byte, error)
	Remove(ctx context.Context, id string) error
	List(ctx context.Context, folderID string) ([]domain.ObjectMetadata, error)
	Quota(ctx context.Context) (domain.StorageQuota, error)
}

type syncLogger interface {
	Create(ctx context.Context, e *domain.SyncLogEntry) error
}

const (
	entityTypeFile = "file"
	thumbPrefix    = "thumb_"
)

// Client performs object store calls for a single user. It is built per
// request and must not be shared between users.
type Client struct {
	backend      Backend
	userID       uuid.UUID
	rootFolderID string
	logs         syncLogger
	timeout      time.Duration
	log          *slog.Logger
	now          func() time.Time
}

// NewClient creates a Client. timeout bounds every backend call; zero
// disables the bound.
func NewClient(backend Backend, userID uuid.UUID, logs syncLogger, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		backend: backend,
		userID:  userID,
		logs:    logs,
		timeout: timeout,
		log:     logger.With("service", "objectstore", "user_id", userID.String()),
		now:     time.Now,
	}
}

// WithRootFolder records the id of the user's application folder.
func (c *Client) WithRootFolder(id string) *Client {
	c.rootFolderID = id
	return c
}

// UserID returns the owner of the client.
func (c *Client) UserID() uuid.UUID { return c.userID }

// RootFolderID returns the stored application folder id, empty when unknown.
func (c *Client) RootFolderID() string { return c.rootFolderID }

// CreateFolder creates a folder under parentID (the store root when empty).
func (c *Client) CreateFolder(ctx context.Context, name, parentID string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domain.NewValidationError("name", "required")
	}

	started := time.Now()
	callCtx, cancel := c.callCtx(ctx)
	defer cancel()

	id, err := c.backend.CreateFolder(callCtx, name, parentID)
	observe("create_folder", started, err)
	if err != nil {
		return "", domain.NewObjectStoreError("create_folder", err)
	}
	return id, nil
}

// EnsureFolder returns the id of the named folder under parentID, creating
// it when absent.
func (c *Client) EnsureFolder(ctx context.Context, name, parentID string) (string, error) {
	started := time.Now()
	callCtx, cancel := c.callCtx(ctx)
	id, err := c.backend.FindFolder(callCtx, name, parentID)
	cancel()
	if err == nil {
		observe("find_folder", started, nil)
		return id, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		observe("find_folder", started, err)
		return "", domain.NewObjectStoreError("find_folder", err)
	}
	observe("find_folder", started, nil)

	return c.CreateFolder(ctx, name, parentID)
}

// Upload stores an object and, for images, a best-effort JPEG preview next
// to it. One sync log entry is written for the call.
func (c *Client) Upload(ctx context.Context, req domain.UploadRequest) (domain.UploadResult, error) {
	if err := validateUpload(req); err != nil {
		return domain.UploadResult{}, err
	}

	started := c.now()
	callCtx, cancel := c.callCtx(ctx)
	defer cancel()

	res, err := c.backend.Put(callCtx, req)
	observe("upload", started, err)

	entry := c.newEntry(domain.SyncTypeFileUpload, "upload", req.Name)
	if err != nil {
		c.finish(ctx, entry, started, err)
		return domain.UploadResult{}, domain.NewObjectStoreError("upload", err)
	}

	if thumbnail.IsImage(req.MimeType) {
		if id, ok := c.uploadThumbnail(callCtx, req); ok {
			res.ThumbnailID = &id
		}
	}

	entry.ExternalObjectID = &res.ObjectID
	size := res.Size
	entry.ByteSize = &size
	c.finish(ctx, entry, started, nil)

	c.log.InfoContext(ctx, "object uploaded",
		slog.String("object_id", res.ObjectID),
		slog.String("name", req.Name),
		slog.Int64("size", res.Size),
	)
	return res, nil
}

// Download returns the content of an object.
func (c *Client) Download(ctx context.Context, objectID string) ([]byte, error) {
	if strings.TrimSpace(objectID) == "" {
		return nil, domain.NewValidationError("file_id", "required")
	}

	started := time.Now()
	callCtx, cancel := c.callCtx(ctx)
	defer cancel()

	body, err := c.backend.Get(callCtx, objectID)
	observe("download", started, err)
	if err != nil {
		return nil, domain.NewObjectStoreError("download", err)
	}
	return body, nil
}

// Delete removes an object. One sync log entry is written for the call.
func (c *Client) Delete(ctx context.Context, objectID string) error {
	if strings.TrimSpace(objectID) == "" {
		return domain.NewValidationError("file_id", "required")
	}

	started := c.now()
	callCtx, cancel := c.callCtx(ctx)
	defer cancel()

	err := c.backend.Remove(callCtx, objectID)
	observe("delete", started, err)

	entry := c.newEntry(domain.SyncTypeFileDelete, "delete", "")
	entry.ExternalObjectID = &objectID
	c.finish(ctx, entry, started, err)

	if err != nil {
		return domain.NewObjectStoreError("delete", err)
	}
	c.log.InfoContext(ctx, "object deleted", slog.String("object_id", objectID))
	return nil
}

// List returns the objects in a folder.
func (c *Client) List(ctx context.Context, folderID string) ([]domain.ObjectMetadata, error) {
	started := time.Now()
	callCtx, cancel := c.callCtx(ctx)
	defer cancel()

	objs, err := c.backend.List(callCtx, folderID)
	observe("list", started, err)
	if err != nil {
		return nil, domain.NewObjectStoreError("list", err)
	}
	if objs == nil {
		objs = []domain.ObjectMetadata{}
	}
	return objs, nil
}

// Quota returns the user's storage usage.
func (c *Client) Quota(ctx context.Context) (domain.StorageQuota, error) {
	started := time.Now()
	callCtx, cancel := c.callCtx(ctx)
	defer cancel()

	q, err := c.backend.Quota(callCtx)
	observe("quota", started, err)
	if err != nil {
		return domain.StorageQuota{}, domain.NewObjectStoreError("quota", err)
	}
	return q, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (c *Client) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

func (c *Client) uploadThumbnail(ctx context.Context, req domain.UploadRequest) (string, bool) {
	preview, err := thumbnail.Generate(req.Content)
	if err != nil {
		c.log.WarnContext(ctx, "thumbnail skipped", slog.String("name", req.Name), slog.String("error", err.Error()))
		return "", false
	}

	started := time.Now()
	res, err := c.backend.Put(ctx, domain.UploadRequest{
		Content:  preview,
		Name:     thumbPrefix + req.Name,
		MimeType: "image/jpeg",
		FolderID: req.FolderID,
	})
	observe("upload_thumbnail", started, err)
	if err != nil {
		c.log.WarnContext(ctx, "thumbnail upload failed", slog.String("name", req.Name), slog.String("error", err.Error()))
		return "", false
	}
	return res.ObjectID, true
}

func (c *Client) newEntry(syncType domain.SyncType, action, path string) *domain.SyncLogEntry {
	e := &domain.SyncLogEntry{
		UserID:     c.userID,
		SyncType:   syncType,
		EntityType: entityTypeFile,
		Action:     action,
	}
	if path != "" {
		e.Path = &path
	}
	return e
}

// finish stamps the outcome on entry and writes it. A failed log write is
// reported but never replaces the outcome of the store call.
func (c *Client) finish(ctx context.Context, e *domain.SyncLogEntry, started time.Time, callErr error) {
	e.DurationMs = c.now().Sub(started).Milliseconds()
	e.Status = domain.SyncStatusSuccess
	if callErr != nil {
		e.Status = domain.SyncStatusError
		msg := callErr.Error()
		e.ErrorMessage = &msg
	}

	// The call context may already be past its deadline.
	logCtx := context.WithoutCancel(ctx)
	if err := c.logs.Create(logCtx, e); err != nil {
		c.log.ErrorContext(ctx, "sync log write failed",
			slog.String("sync_type", e.SyncType.String()),
			slog.String("error", err.Error()),
		)
	}
}

func validateUpload(req domain.UploadRequest) error {
	var errs []domain.FieldError
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if strings.TrimSpace(req.MimeType) == "" {
		errs = append(errs, domain.FieldError{Field: "mime_type", Message: "required"})
	}
	if req.Content == nil {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// String identifies the client in logs without exposing credentials.
func (c *Client) String() string {
	return fmt.Sprintf("objectstore.Client{user=%s}", c.userID)
}
