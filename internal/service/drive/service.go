// Package drive manages the user's Drive connection and exposes the audited
// object store operations to the HTTP layer.
package drive

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
)

type connector interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) (domain.DriveCredentials, error)
}

type stateSigner interface {
	GenerateStateToken(userID uuid.UUID) (string, error)
	ValidateStateToken(state string) (uuid.UUID, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	SaveDriveCredentials(ctx context.Context, userID uuid.UUID, creds domain.DriveCredentials) error
	ClearDriveCredentials(ctx context.Context, userID uuid.UUID) error
	SetDriveRootFolder(ctx context.Context, userID uuid.UUID, folderID string) error
}

type syncLogRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.SyncLogEntry, int, error)
}

// Store is the audited object store client of one user.
type Store interface {
	RootFolderID() string
	CreateFolder(ctx context.Context, name, parentID string) (string, error)
	EnsureFolder(ctx context.Context, name, parentID string) (string, error)
	Upload(ctx context.Context, req domain.UploadRequest) (domain.UploadResult, error)
	Download(ctx context.Context, objectID string) ([]byte, error)
	Delete(ctx context.Context, objectID string) error
	Quota(ctx context.Context) (domain.StorageQuota, error)
}

// StoreFunc opens the store of a connected user.
type StoreFunc func(ctx context.Context, userID uuid.UUID) (Store, error)

// Options names the folder tree created on connect.
type Options struct {
	RootFolder string
	Subfolders []string
}

// Service implements the Drive connection lifecycle and file passthroughs.
type Service struct {
	log     *slog.Logger
	oauth   connector
	states  stateSigner
	users   userRepo
	history syncLogRepo
	stores  StoreFunc
	opts    Options
}

// NewService creates a new drive service.
func NewService(
	logger *slog.Logger,
	oauth connector,
	states stateSigner,
	users userRepo,
	history syncLogRepo,
	stores StoreFunc,
	opts Options,
) *Service {
	return &Service{
		log:     logger.With("service", "drive"),
		oauth:   oauth,
		states:  states,
		users:   users,
		history: history,
		stores:  stores,
		opts:    opts,
	}
}
