package drive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
)

const (
	folderMimeType = "application/vnd.google-apps.folder"
	listPageSize   = 100
)

// Client performs object store calls on behalf of one user.
type Client struct {
	svc *drive.Service
	log *slog.Logger
}

// NewClient wraps an already authenticated Drive service.
func NewClient(svc *drive.Service, logger *slog.Logger) *Client {
	return &Client{svc: svc, log: logger}
}

// CreateFolder creates a folder under parentID (the Drive root when empty).
func (c *Client) CreateFolder(ctx context.Context, name, parentID string) (string, error) {
	f := &drive.File{Name: name, MimeType: folderMimeType}
	if parentID != "" {
		f.Parents = []string{parentID}
	}

	created, err := c.svc.Files.Create(f).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", mapError(err)
	}
	return created.Id, nil
}

// FindFolder returns the id of a non-trashed folder with the given name,
// restricted to parentID when set. domain.ErrNotFound when there is none.
func (c *Client) FindFolder(ctx context.Context, name, parentID string) (string, error) {
	q := fmt.Sprintf("name = '%s' and mimeType = '%s' and trashed = false", escapeQuery(name), folderMimeType)
	if parentID != "" {
		q += fmt.Sprintf(" and '%s' in parents", escapeQuery(parentID))
	}

	res, err := c.svc.Files.List().Q(q).PageSize(1).Fields("files(id, name)").Context(ctx).Do()
	if err != nil {
		return "", mapError(err)
	}
	if len(res.Files) == 0 {
		return "", fmt.Errorf("folder %q: %w", name, domain.ErrNotFound)
	}
	return res.Files[0].Id, nil
}

// Put uploads content as a new file.
func (c *Client) Put(ctx context.Context, req domain.UploadRequest) (domain.UploadResult, error) {
	f := &drive.File{Name: req.Name}
	if req.FolderID != "" {
		f.Parents = []string{req.FolderID}
	}

	created, err := c.svc.Files.Create(f).
		Media(bytes.NewReader(req.Content), googleapi.ContentType(req.MimeType)).
		Fields("id, name, size, webViewLink, thumbnailLink").
		Context(ctx).
		Do()
	if err != nil {
		return domain.UploadResult{}, mapError(err)
	}

	size := created.Size
	if size == 0 {
		size = int64(len(req.Content))
	}
	return domain.UploadResult{
		ObjectID:     created.Id,
		Name:         created.Name,
		Size:         size,
		ViewURL:      nonEmpty(created.WebViewLink),
		ThumbnailURL: nonEmpty(created.ThumbnailLink),
	}, nil
}

// Get downloads the content of a file.
func (c *Client) Get(ctx context.Context, id string) ([]byte, error) {
	resp, err := c.svc.Files.Get(id).Context(ctx).Download()
	if err != nil {
		return nil, mapError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

// Remove permanently deletes a file.
func (c *Client) Remove(ctx context.Context, id string) error {
	if err := c.svc.Files.Delete(id).Context(ctx).Do(); err != nil {
		return mapError(err)
	}
	return nil
}

// List returns every non-trashed object in a folder, following pagination.
func (c *Client) List(ctx context.Context, folderID string) ([]domain.ObjectMetadata, error) {
	q := fmt.Sprintf("'%s' in parents and trashed = false", escapeQuery(folderID))

	var out []domain.ObjectMetadata
	pageToken := ""
	for {
		call := c.svc.Files.List().
			Q(q).
			PageSize(listPageSize).
			Fields("nextPageToken, files(id, name, size, createdTime, modifiedTime, mimeType, thumbnailLink)").
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		res, err := call.Do()
		if err != nil {
			return nil, mapError(err)
		}
		for _, f := range res.Files {
			out = append(out, toMetadata(f))
		}

		if res.NextPageToken == "" {
			break
		}
		pageToken = res.NextPageToken
	}

	c.log.DebugContext(ctx, "drive list", slog.String("folder_id", folderID), slog.Int("count", len(out)))
	return out, nil
}

// Quota returns the account's storage usage.
func (c *Client) Quota(ctx context.Context) (domain.StorageQuota, error) {
	about, err := c.svc.About.Get().Fields("storageQuota").Context(ctx).Do()
	if err != nil {
		return domain.StorageQuota{}, mapError(err)
	}
	q := about.StorageQuota
	if q == nil {
		return domain.StorageQuota{}, nil
	}
	return domain.StorageQuota{
		Limit:             q.Limit,
		Usage:             q.Usage,
		UsageInDrive:      q.UsageInDrive,
		UsageInDriveTrash: q.UsageInDriveTrash,
	}, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// mapError keeps the SDK error and marks a 404 as domain.ErrNotFound.
func mapError(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Code == http.StatusNotFound {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, gerr.Message)
	}
	return err
}

// escapeQuery escapes a value for a single-quoted Drive query literal.
func escapeQuery(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}

func toMetadata(f *drive.File) domain.ObjectMetadata {
	m := domain.ObjectMetadata{
		ID:           f.Id,
		Name:         f.Name,
		MimeType:     f.MimeType,
		Size:         f.Size,
		ThumbnailURL: nonEmpty(f.ThumbnailLink),
	}
	if t, err := time.Parse(time.RFC3339, f.CreatedTime); err == nil {
		m.CreatedTime = t
	}
	if t, err := time.Parse(time.RFC3339, f.ModifiedTime); err == nil {
		m.ModifiedTime = t
	}
	return m
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
