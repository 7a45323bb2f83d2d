package objectstore

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
)

var (
	_ Backend    = &backendMock{}
	_ syncLogger = &syncLoggerMock{}
	_ userRepo   = &userRepoMock{}
)

type backendMock struct {
	CreateFolderFunc func(ctx context.Context, name, parentID string) (string, error)
	FindFolderFunc   func(ctx context.Context, name, parentID string) (string, error)
	PutFunc          func(ctx context.Context, req domain.UploadRequest) (domain.UploadResult, error)
	GetFunc          func(ctx context.Context, id string) ([]byte, error)
	RemoveFunc       func(ctx context.Context, id string) error
	ListFunc         func(ctx context.Context, folderID string) ([]domain.ObjectMetadata, error)
	QuotaFunc        func(ctx context.Context) (domain.StorageQuota, error)

	mu    sync.RWMutex
	calls struct {
		CreateFolder []struct{ Name, ParentID string }
		Put          []domain.UploadRequest
		Remove       []string
	}
}

func (m *backendMock) CreateFolder(ctx context.Context, name, parentID string) (string, error) {
	if m.CreateFolderFunc == nil {
		panic("backendMock.CreateFolderFunc: method is nil but Backend.CreateFolder was just called")
	}
	m.mu.Lock()
	m.calls.CreateFolder = append(m.calls.CreateFolder, struct{ Name, ParentID string }{name, parentID})
	m.mu.Unlock()
	return m.CreateFolderFunc(ctx, name, parentID)
}

func (m *backendMock) CreateFolderCalls() []struct{ Name, ParentID string } {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls.CreateFolder
}

func (m *backendMock) FindFolder(ctx context.Context, name, parentID string) (string, error) {
	if m.FindFolderFunc == nil {
		panic("backendMock.FindFolderFunc: method is nil but Backend.FindFolder was just called")
	}
	return m.FindFolderFunc(ctx, name, parentID)
}

func (m *backendMock) Put(ctx context.Context, req domain.UploadRequest) (domain.UploadResult, error) {
	if m.PutFunc == nil {
		panic("backendMock.PutFunc: method is nil but Backend.Put was just called")
	}
	m.mu.Lock()
	m.calls.Put = append(m.calls.Put, req)
	m.mu.Unlock()
	return m.PutFunc(ctx, req)
}

func (m *backendMock) PutCalls() []domain.UploadRequest {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls.Put
}

func (m *backendMock) Get(ctx context.Context, id string) ([]byte, error) {
	if m.GetFunc == nil {
		panic("backendMock.GetFunc: method is nil but Backend.Get was just called")
	}
	return m.GetFunc(ctx, id)
}

func (m *backendMock) Remove(ctx context.Context, id string) error {
	if m.RemoveFunc == nil {
		panic("backendMock.RemoveFunc: method is nil but Backend.Remove was just called")
	}
	m.mu.Lock()
	m.calls.Remove = append(m.calls.Remove, id)
	m.mu.Unlock()
	return m.RemoveFunc(ctx, id)
}

func (m *backendMock) RemoveCalls() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls.Remove
}

func (m *backendMock) List(ctx context.Context, folderID string) ([]domain.ObjectMetadata, error) {
	if m.ListFunc == nil {
		panic("backendMock.ListFunc: method is nil but Backend.List was just called")
	}
	return m.ListFunc(ctx, folderID)
}

func (m *backendMock) Quota(ctx context.Context) (domain.StorageQuota, error) {
	if m.QuotaFunc == nil {
		panic("backendMock.QuotaFunc: method is nil but Backend.Quota was just called")
	}
	return m.QuotaFunc(ctx)
}

type syncLoggerMock struct {
	CreateFunc func(ctx context.Context, e *domain.SyncLogEntry) error

	mu      sync.RWMutex
	entries []domain.SyncLogEntry
}

func (m *syncLoggerMock) Create(ctx context.Context, e *domain.SyncLogEntry) error {
	m.mu.Lock()
	m.entries = append(m.entries, *e)
	m.mu.Unlock()
	if m.CreateFunc == nil {
		return nil
	}
	return m.CreateFunc(ctx, e)
}

func (m *syncLoggerMock) CreateCalls() []domain.SyncLogEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.entries
}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (m *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, id)
}
