package backup

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
)

var (
	_ yarnRepo     = &yarnRepoMock{}
	_ patternRepo  = &patternRepoMock{}
	_ projectRepo  = &projectRepoMock{}
	_ progressRepo = &progressRepoMock{}
	_ syncLogger   = &syncLoggerMock{}
	_ Store        = &storeMock{}
)

type yarnRepoMock struct {
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.YarnStock, error)
}

func (m *yarnRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.YarnStock, error) {
	if m.ListByUserFunc == nil {
		panic("yarnRepoMock.ListByUserFunc: method is nil but yarnRepo.ListByUser was just called")
	}
	return m.ListByUserFunc(ctx, userID)
}

type patternRepoMock struct {
	ListByUserFunc   func(ctx context.Context, userID uuid.UUID) ([]domain.Pattern, error)
	ListByIDsFunc    func(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.Pattern, error)
	SetDriveFileFunc func(ctx context.Context, userID, patternID uuid.UUID, res domain.UploadResult) error

	mu    sync.Mutex
	calls struct {
		SetDriveFile []uuid.UUID
	}
}

func (m *patternRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Pattern, error) {
	if m.ListByUserFunc == nil {
		panic("patternRepoMock.ListByUserFunc: method is nil but patternRepo.ListByUser was just called")
	}
	return m.ListByUserFunc(ctx, userID)
}

func (m *patternRepoMock) ListByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.Pattern, error) {
	if m.ListByIDsFunc == nil {
		panic("patternRepoMock.ListByIDsFunc: method is nil but patternRepo.ListByIDs was just called")
	}
	return m.ListByIDsFunc(ctx, userID, ids)
}

func (m *patternRepoMock) SetDriveFile(ctx context.Context, userID, patternID uuid.UUID, res domain.UploadResult) error {
	if m.SetDriveFileFunc == nil {
		panic("patternRepoMock.SetDriveFileFunc: method is nil but patternRepo.SetDriveFile was just called")
	}
	m.mu.Lock()
	m.calls.SetDriveFile = append(m.calls.SetDriveFile, patternID)
	m.mu.Unlock()
	return m.SetDriveFileFunc(ctx, userID, patternID, res)
}

func (m *patternRepoMock) SetDriveFileCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.SetDriveFile
}

type projectRepoMock struct {
	ListByUserFunc          func(ctx context.Context, userID uuid.UUID) ([]domain.Project, error)
	ListYarnUsageByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.ProjectYarnUsage, error)
}

func (m *projectRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Project, error) {
	if m.ListByUserFunc == nil {
		panic("projectRepoMock.ListByUserFunc: method is nil but projectRepo.ListByUser was just called")
	}
	return m.ListByUserFunc(ctx, userID)
}

func (m *projectRepoMock) ListYarnUsageByUser(ctx context.Context, userID uuid.UUID) ([]domain.ProjectYarnUsage, error) {
	if m.ListYarnUsageByUserFunc == nil {
		panic("projectRepoMock.ListYarnUsageByUserFunc: method is nil but projectRepo.ListYarnUsageByUser was just called")
	}
	return m.ListYarnUsageByUserFunc(ctx, userID)
}

type progressRepoMock struct {
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.ProjectProgress, error)
}

func (m *progressRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ProjectProgress, error) {
	if m.ListByUserFunc == nil {
		panic("progressRepoMock.ListByUserFunc: method is nil but progressRepo.ListByUser was just called")
	}
	return m.ListByUserFunc(ctx, userID)
}

type syncLoggerMock struct {
	mu      sync.Mutex
	entries []domain.SyncLogEntry
}

func (m *syncLoggerMock) Create(_ context.Context, e *domain.SyncLogEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, *e)
	return nil
}

func (m *syncLoggerMock) CreateCalls() []domain.SyncLogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entries
}

type storeMock struct {
	RootFolderIDFunc func() string
	EnsureFolderFunc func(ctx context.Context, name, parentID string) (string, error)
	UploadFunc       func(ctx context.Context, req domain.UploadRequest) (domain.UploadResult, error)
	DeleteFunc       func(ctx context.Context, objectID string) error
	ListFunc         func(ctx context.Context, folderID string) ([]domain.ObjectMetadata, error)

	mu    sync.Mutex
	calls struct {
		EnsureFolder []struct{ Name, ParentID string }
		Upload       []domain.UploadRequest
		Delete       []string
	}
}

func (m *storeMock) RootFolderID() string {
	if m.RootFolderIDFunc == nil {
		return ""
	}
	return m.RootFolderIDFunc()
}

func (m *storeMock) EnsureFolder(ctx context.Context, name, parentID string) (string, error) {
	m.mu.Lock()
	m.calls.EnsureFolder = append(m.calls.EnsureFolder, struct{ Name, ParentID string }{name, parentID})
	m.mu.Unlock()
	if m.EnsureFolderFunc == nil {
		return "folder-" + name, nil
	}
	return m.EnsureFolderFunc(ctx, name, parentID)
}

func (m *storeMock) EnsureFolderCalls() []struct{ Name, ParentID string } {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.EnsureFolder
}

func (m *storeMock) Upload(ctx context.Context, req domain.UploadRequest) (domain.UploadResult, error) {
	if m.UploadFunc == nil {
		panic("storeMock.UploadFunc: method is nil but Store.Upload was just called")
	}
	m.mu.Lock()
	m.calls.Upload = append(m.calls.Upload, req)
	m.mu.Unlock()
	return m.UploadFunc(ctx, req)
}

func (m *storeMock) UploadCalls() []domain.UploadRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Upload
}

func (m *storeMock) Delete(ctx context.Context, objectID string) error {
	if m.DeleteFunc == nil {
		panic("storeMock.DeleteFunc: method is nil but Store.Delete was just called")
	}
	m.mu.Lock()
	m.calls.Delete = append(m.calls.Delete, objectID)
	m.mu.Unlock()
	return m.DeleteFunc(ctx, objectID)
}

func (m *storeMock) DeleteCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Delete
}

func (m *storeMock) List(ctx context.Context, folderID string) ([]domain.ObjectMetadata, error) {
	if m.ListFunc == nil {
		panic("storeMock.ListFunc: method is nil but Store.List was just called")
	}
	return m.ListFunc(ctx, folderID)
}
