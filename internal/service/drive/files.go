package drive

import (
	"context"
	"strings"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
	"github.com/heartmarshall/yarnstash-backend/pkg/ctxutil"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

// SyncHistory is one page of the user's sync log.
type SyncHistory struct {
	Logs   []domain.SyncLogEntry `json:"logs"`
	Total  int                   `json:"total"`
	Limit  int                   `json:"limit"`
	Offset int                   `json:"offset"`
}

func (s *Service) store(ctx context.Context) (Store, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.stores(ctx, userID)
}

// UploadFile stores a file. An empty FolderID places it in the user's
// application root folder.
func (s *Service) UploadFile(ctx context.Context, req domain.UploadRequest) (domain.UploadResult, error) {
	store, err := s.store(ctx)
	if err != nil {
		return domain.UploadResult{}, err
	}
	if req.FolderID == "" {
		req.FolderID = store.RootFolderID()
	}
	return store.Upload(ctx, req)
}

// DownloadFile returns the content of a stored file.
func (s *Service) DownloadFile(ctx context.Context, fileID string) ([]byte, error) {
	store, err := s.store(ctx)
	if err != nil {
		return nil, err
	}
	return store.Download(ctx, fileID)
}

// DeleteFile removes a stored file.
func (s *Service) DeleteFile(ctx context.Context, fileID string) error {
	store, err := s.store(ctx)
	if err != nil {
		return err
	}
	return store.Delete(ctx, fileID)
}

// CreateFolder creates a folder. An empty parentID means the application
// root folder.
func (s *Service) CreateFolder(ctx context.Context, name, parentID string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", domain.NewValidationError("name", "required")
	}
	store, err := s.store(ctx)
	if err != nil {
		return "", err
	}
	if parentID == "" {
		parentID = store.RootFolderID()
	}
	return store.CreateFolder(ctx, name, parentID)
}

// Folder is one application folder in the user's Drive.
type Folder struct {
	Name     string `json:"name"`
	ID       string `json:"id"`
	ParentID string `json:"parentId,omitempty"`
}

// ListFolders returns the application root followed by its configured
// subfolders. A subfolder deleted in Drive since connect is recreated.
func (s *Service) ListFolders(ctx context.Context) ([]Folder, error) {
	store, err := s.store(ctx)
	if err != nil {
		return nil, err
	}

	root := store.RootFolderID()
	folders := make([]Folder, 0, len(s.opts.Subfolders)+1)
	folders = append(folders, Folder{Name: s.opts.RootFolder, ID: root})
	for _, name := range s.opts.Subfolders {
		id, err := store.EnsureFolder(ctx, name, root)
		if err != nil {
			return nil, err
		}
		folders = append(folders, Folder{Name: name, ID: id, ParentID: root})
	}
	return folders, nil
}

// SyncHistory pages through the user's sync log, newest first.
func (s *Service) SyncHistory(ctx context.Context, limit, offset int) (*SyncHistory, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if limit < 0 || offset < 0 {
		return nil, domain.NewValidationError("limit", "limit and offset must not be negative")
	}
	if limit == 0 {
		limit = defaultHistoryLimit
	}
	limit = min(limit, maxHistoryLimit)

	logs, total, err := s.history.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	return &SyncHistory{Logs: logs, Total: total, Limit: limit, Offset: offset}, nil
}
