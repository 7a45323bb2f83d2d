package drive

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
)

var (
	_ connector   = &connectorMock{}
	_ stateSigner = &stateSignerMock{}
	_ userRepo    = &userRepoMock{}
	_ syncLogRepo = &syncLogRepoMock{}
	_ Store       = &storeMock{}
)

type connectorMock struct {
	AuthURLFunc  func(state string) string
	ExchangeFunc func(ctx context.Context, code string) (domain.DriveCredentials, error)
}

func (m *connectorMock) AuthURL(state string) string {
	if m.AuthURLFunc == nil {
		panic("connectorMock.AuthURLFunc: method is nil but connector.AuthURL was just called")
	}
	return m.AuthURLFunc(state)
}

func (m *connectorMock) Exchange(ctx context.Context, code string) (domain.DriveCredentials, error) {
	if m.ExchangeFunc == nil {
		panic("connectorMock.ExchangeFunc: method is nil but connector.Exchange was just called")
	}
	return m.ExchangeFunc(ctx, code)
}

type stateSignerMock struct {
	GenerateStateTokenFunc func(userID uuid.UUID) (string, error)
	ValidateStateTokenFunc func(state string) (uuid.UUID, error)
}

func (m *stateSignerMock) GenerateStateToken(userID uuid.UUID) (string, error) {
	if m.GenerateStateTokenFunc == nil {
		panic("stateSignerMock.GenerateStateTokenFunc: method is nil but stateSigner.GenerateStateToken was just called")
	}
	return m.GenerateStateTokenFunc(userID)
}

func (m *stateSignerMock) ValidateStateToken(state string) (uuid.UUID, error) {
	if m.ValidateStateTokenFunc == nil {
		panic("stateSignerMock.ValidateStateTokenFunc: method is nil but stateSigner.ValidateStateToken was just called")
	}
	return m.ValidateStateTokenFunc(state)
}

type userRepoMock struct {
	GetByIDFunc               func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	SaveDriveCredentialsFunc  func(ctx context.Context, userID uuid.UUID, creds domain.DriveCredentials) error
	ClearDriveCredentialsFunc func(ctx context.Context, userID uuid.UUID) error
	SetDriveRootFolderFunc    func(ctx context.Context, userID uuid.UUID, folderID string) error
}

func (m *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *userRepoMock) SaveDriveCredentials(ctx context.Context, userID uuid.UUID, creds domain.DriveCredentials) error {
	if m.SaveDriveCredentialsFunc == nil {
		panic("userRepoMock.SaveDriveCredentialsFunc: method is nil but userRepo.SaveDriveCredentials was just called")
	}
	return m.SaveDriveCredentialsFunc(ctx, userID, creds)
}

func (m *userRepoMock) ClearDriveCredentials(ctx context.Context, userID uuid.UUID) error {
	if m.ClearDriveCredentialsFunc == nil {
		panic("userRepoMock.ClearDriveCredentialsFunc: method is nil but userRepo.ClearDriveCredentials was just called")
	}
	return m.ClearDriveCredentialsFunc(ctx, userID)
}

func (m *userRepoMock) SetDriveRootFolder(ctx context.Context, userID uuid.UUID, folderID string) error {
	if m.SetDriveRootFolderFunc == nil {
		panic("userRepoMock.SetDriveRootFolderFunc: method is nil but userRepo.SetDriveRootFolder was just called")
	}
	return m.SetDriveRootFolderFunc(ctx, userID, folderID)
}

type syncLogRepoMock struct {
	ListByUserFunc func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.SyncLogEntry, int, error)
}

func (m *syncLogRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.SyncLogEntry, int, error) {
	if m.ListByUserFunc == nil {
		panic("syncLogRepoMock.ListByUserFunc: method is nil but syncLogRepo.ListByUser was just called")
	}
	return m.ListByUserFunc(ctx, userID, limit, offset)
}

// storeMock records folder creation and uploads. Unset funcs fall back to
// simple in-memory behaviour.
type storeMock struct {
	Root         string
	UploadFunc   func(ctx context.Context, req domain.UploadRequest) (domain.UploadResult, error)
	DownloadFunc func(ctx context.Context, objectID string) ([]byte, error)
	DeleteFunc   func(ctx context.Context, objectID string) error
	QuotaFunc    func(ctx context.Context) (domain.StorageQuota, error)
	EnsureErr    error

	mu      sync.Mutex
	folders []string
	parents []string
}

func (m *storeMock) RootFolderID() string { return m.Root }

func (m *storeMock) CreateFolder(_ context.Context, name, parentID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.folders = append(m.folders, name)
	m.parents = append(m.parents, parentID)
	return "new-" + name, nil
}

func (m *storeMock) EnsureFolder(_ context.Context, name, parentID string) (string, error) {
	if m.EnsureErr != nil {
		return "", m.EnsureErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.folders = append(m.folders, name)
	m.parents = append(m.parents, parentID)
	return "id-" + name, nil
}

func (m *storeMock) Upload(ctx context.Context, req domain.UploadRequest) (domain.UploadResult, error) {
	if m.UploadFunc == nil {
		panic("storeMock.UploadFunc: method is nil but Store.Upload was just called")
	}
	return m.UploadFunc(ctx, req)
}

func (m *storeMock) Download(ctx context.Context, objectID string) ([]byte, error) {
	if m.DownloadFunc == nil {
		panic("storeMock.DownloadFunc: method is nil but Store.Download was just called")
	}
	return m.DownloadFunc(ctx, objectID)
}

func (m *storeMock) Delete(ctx context.Context, objectID string) error {
	if m.DeleteFunc == nil {
		panic("storeMock.DeleteFunc: method is nil but Store.Delete was just called")
	}
	return m.DeleteFunc(ctx, objectID)
}

func (m *storeMock) Quota(ctx context.Context) (domain.StorageQuota, error) {
	if m.QuotaFunc == nil {
		panic("storeMock.QuotaFunc: method is nil but Store.Quota was just called")
	}
	return m.QuotaFunc(ctx)
}

func (m *storeMock) Folders() (names, parents []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.folders, m.parents
}
