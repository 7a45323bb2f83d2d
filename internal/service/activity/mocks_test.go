package activity

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
)

var (
	_ yarnRepo     = &yarnRepoMock{}
	_ patternRepo  = &patternRepoMock{}
	_ projectRepo  = &projectRepoMock{}
	_ progressRepo = &progressRepoMock{}
	_ userRepo     = &userRepoMock{}
)

type yarnRepoMock struct {
	ListByUserFunc         func(ctx context.Context, userID uuid.UUID) ([]domain.YarnStock, error)
	FindRecentFunc         func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.YarnStock, error)
	FindCreatedBetweenFunc func(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.YarnStock, error)
	CountSinceFunc         func(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)

	mu    sync.Mutex
	calls struct {
		FindRecent []int
		CountSince []time.Time
	}
}

func (m *yarnRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.YarnStock, error) {
	if m.ListByUserFunc == nil {
		panic("yarnRepoMock.ListByUserFunc: method is nil but yarnRepo.ListByUser was just called")
	}
	return m.ListByUserFunc(ctx, userID)
}

func (m *yarnRepoMock) FindRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.YarnStock, error) {
	if m.FindRecentFunc == nil {
		panic("yarnRepoMock.FindRecentFunc: method is nil but yarnRepo.FindRecent was just called")
	}
	m.mu.Lock()
	m.calls.FindRecent = append(m.calls.FindRecent, limit)
	m.mu.Unlock()
	return m.FindRecentFunc(ctx, userID, limit)
}

func (m *yarnRepoMock) FindRecentCalls() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.FindRecent
}

func (m *yarnRepoMock) FindCreatedBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.YarnStock, error) {
	if m.FindCreatedBetweenFunc == nil {
		panic("yarnRepoMock.FindCreatedBetweenFunc: method is nil but yarnRepo.FindCreatedBetween was just called")
	}
	return m.FindCreatedBetweenFunc(ctx, userID, start, end)
}

func (m *yarnRepoMock) CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	if m.CountSinceFunc == nil {
		panic("yarnRepoMock.CountSinceFunc: method is nil but yarnRepo.CountSince was just called")
	}
	m.mu.Lock()
	m.calls.CountSince = append(m.calls.CountSince, since)
	m.mu.Unlock()
	return m.CountSinceFunc(ctx, userID, since)
}

func (m *yarnRepoMock) CountSinceCalls() []time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.CountSince
}

type patternRepoMock struct {
	ListByUserFunc         func(ctx context.Context, userID uuid.UUID) ([]domain.Pattern, error)
	FindRecentFunc         func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Pattern, error)
	FindCreatedBetweenFunc func(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.Pattern, error)
	CountSinceFunc         func(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
}

func (m *patternRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Pattern, error) {
	if m.ListByUserFunc == nil {
		panic("patternRepoMock.ListByUserFunc: method is nil but patternRepo.ListByUser was just called")
	}
	return m.ListByUserFunc(ctx, userID)
}

func (m *patternRepoMock) FindRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Pattern, error) {
	if m.FindRecentFunc == nil {
		panic("patternRepoMock.FindRecentFunc: method is nil but patternRepo.FindRecent was just called")
	}
	return m.FindRecentFunc(ctx, userID, limit)
}

func (m *patternRepoMock) FindCreatedBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.Pattern, error) {
	if m.FindCreatedBetweenFunc == nil {
		panic("patternRepoMock.FindCreatedBetweenFunc: method is nil but patternRepo.FindCreatedBetween was just called")
	}
	return m.FindCreatedBetweenFunc(ctx, userID, start, end)
}

func (m *patternRepoMock) CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	if m.CountSinceFunc == nil {
		panic("patternRepoMock.CountSinceFunc: method is nil but patternRepo.CountSince was just called")
	}
	return m.CountSinceFunc(ctx, userID, since)
}

type projectRepoMock struct {
	ListByUserFunc          func(ctx context.Context, userID uuid.UUID) ([]domain.Project, error)
	FindRecentFunc          func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Project, error)
	FindCreatedBetweenFunc  func(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.Project, error)
	FindActiveBetweenFunc   func(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.Project, error)
	CountStartedSinceFunc   func(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
	CountCompletedSinceFunc func(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
}

func (m *projectRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Project, error) {
	if m.ListByUserFunc == nil {
		panic("projectRepoMock.ListByUserFunc: method is nil but projectRepo.ListByUser was just called")
	}
	return m.ListByUserFunc(ctx, userID)
}

func (m *projectRepoMock) FindRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Project, error) {
	if m.FindRecentFunc == nil {
		panic("projectRepoMock.FindRecentFunc: method is nil but projectRepo.FindRecent was just called")
	}
	return m.FindRecentFunc(ctx, userID, limit)
}

func (m *projectRepoMock) FindCreatedBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.Project, error) {
	if m.FindCreatedBetweenFunc == nil {
		panic("projectRepoMock.FindCreatedBetweenFunc: method is nil but projectRepo.FindCreatedBetween was just called")
	}
	return m.FindCreatedBetweenFunc(ctx, userID, start, end)
}

func (m *projectRepoMock) FindActiveBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.Project, error) {
	if m.FindActiveBetweenFunc == nil {
		panic("projectRepoMock.FindActiveBetweenFunc: method is nil but projectRepo.FindActiveBetween was just called")
	}
	return m.FindActiveBetweenFunc(ctx, userID, start, end)
}

func (m *projectRepoMock) CountStartedSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	if m.CountStartedSinceFunc == nil {
		panic("projectRepoMock.CountStartedSinceFunc: method is nil but projectRepo.CountStartedSince was just called")
	}
	return m.CountStartedSinceFunc(ctx, userID, since)
}

func (m *projectRepoMock) CountCompletedSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	if m.CountCompletedSinceFunc == nil {
		panic("projectRepoMock.CountCompletedSinceFunc: method is nil but projectRepo.CountCompletedSince was just called")
	}
	return m.CountCompletedSinceFunc(ctx, userID, since)
}

type progressRepoMock struct {
	FindRecentFunc  func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ProjectProgress, error)
	FindBetweenFunc func(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.ProjectProgress, error)
	CountSinceFunc  func(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
}

func (m *progressRepoMock) FindRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ProjectProgress, error) {
	if m.FindRecentFunc == nil {
		panic("progressRepoMock.FindRecentFunc: method is nil but progressRepo.FindRecent was just called")
	}
	return m.FindRecentFunc(ctx, userID, limit)
}

func (m *progressRepoMock) FindBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.ProjectProgress, error) {
	if m.FindBetweenFunc == nil {
		panic("progressRepoMock.FindBetweenFunc: method is nil but progressRepo.FindBetween was just called")
	}
	return m.FindBetweenFunc(ctx, userID, start, end)
}

func (m *progressRepoMock) CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	if m.CountSinceFunc == nil {
		panic("progressRepoMock.CountSinceFunc: method is nil but progressRepo.CountSince was just called")
	}
	return m.CountSinceFunc(ctx, userID, since)
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
