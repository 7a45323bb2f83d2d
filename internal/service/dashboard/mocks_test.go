package dashboard

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
)

type yarnRepoMock struct {
	TotalsFunc        func(ctx context.Context, userID uuid.UUID) (domain.YarnTotals, error)
	CountByWeightFunc func(ctx context.Context, userID uuid.UUID) ([]domain.WeightCount, error)
	CountByColorFunc  func(ctx context.Context, userID uuid.UUID) ([]domain.ColorCount, error)
	CountSinceFunc    func(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
}

func (m *yarnRepoMock) Totals(ctx context.Context, userID uuid.UUID) (domain.YarnTotals, error) {
	if m.TotalsFunc == nil {
		panic("yarnRepoMock.TotalsFunc: method is nil but yarnRepo.Totals was just called")
	}
	return m.TotalsFunc(ctx, userID)
}

func (m *yarnRepoMock) CountByWeight(ctx context.Context, userID uuid.UUID) ([]domain.WeightCount, error) {
	if m.CountByWeightFunc == nil {
		panic("yarnRepoMock.CountByWeightFunc: method is nil but yarnRepo.CountByWeight was just called")
	}
	return m.CountByWeightFunc(ctx, userID)
}

func (m *yarnRepoMock) CountByColor(ctx context.Context, userID uuid.UUID) ([]domain.ColorCount, error) {
	if m.CountByColorFunc == nil {
		panic("yarnRepoMock.CountByColorFunc: method is nil but yarnRepo.CountByColor was just called")
	}
	return m.CountByColorFunc(ctx, userID)
}

func (m *yarnRepoMock) CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	if m.CountSinceFunc == nil {
		panic("yarnRepoMock.CountSinceFunc: method is nil but yarnRepo.CountSince was just called")
	}
	return m.CountSinceFunc(ctx, userID, since)
}

type patternRepoMock struct {
	CountByUserFunc func(ctx context.Context, userID uuid.UUID) (int, error)
	CountSinceFunc  func(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
}

func (m *patternRepoMock) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if m.CountByUserFunc == nil {
		panic("patternRepoMock.CountByUserFunc: method is nil but patternRepo.CountByUser was just called")
	}
	return m.CountByUserFunc(ctx, userID)
}

func (m *patternRepoMock) CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	if m.CountSinceFunc == nil {
		panic("patternRepoMock.CountSinceFunc: method is nil but patternRepo.CountSince was just called")
	}
	return m.CountSinceFunc(ctx, userID, since)
}

type projectRepoMock struct {
	CountByStatusFunc       func(ctx context.Context, userID uuid.UUID) (map[domain.ProjectStatus]int, error)
	CountStartedSinceFunc   func(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
	CountCompletedSinceFunc func(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
	FindInProgressFunc      func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Project, error)
	FindDeadlinesFunc       func(ctx context.Context, userID uuid.UUID, from, to time.Time, limit int) ([]domain.Project, error)

	mu    sync.Mutex
	calls struct {
		CountStartedSince []time.Time
	}
}

func (m *projectRepoMock) CountByStatus(ctx context.Context, userID uuid.UUID) (map[domain.ProjectStatus]int, error) {
	if m.CountByStatusFunc == nil {
		panic("projectRepoMock.CountByStatusFunc: method is nil but projectRepo.CountByStatus was just called")
	}
	return m.CountByStatusFunc(ctx, userID)
}

func (m *projectRepoMock) CountStartedSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	if m.CountStartedSinceFunc == nil {
		panic("projectRepoMock.CountStartedSinceFunc: method is nil but projectRepo.CountStartedSince was just called")
	}
	m.mu.Lock()
	m.calls.CountStartedSince = append(m.calls.CountStartedSince, since)
	m.mu.Unlock()
	return m.CountStartedSinceFunc(ctx, userID, since)
}

func (m *projectRepoMock) CountStartedSinceCalls() []time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.CountStartedSince
}

func (m *projectRepoMock) CountCompletedSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	if m.CountCompletedSinceFunc == nil {
		panic("projectRepoMock.CountCompletedSinceFunc: method is nil but projectRepo.CountCompletedSince was just called")
	}
	return m.CountCompletedSinceFunc(ctx, userID, since)
}

func (m *projectRepoMock) FindInProgress(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Project, error) {
	if m.FindInProgressFunc == nil {
		panic("projectRepoMock.FindInProgressFunc: method is nil but projectRepo.FindInProgress was just called")
	}
	return m.FindInProgressFunc(ctx, userID, limit)
}

func (m *projectRepoMock) FindDeadlines(ctx context.Context, userID uuid.UUID, from, to time.Time, limit int) ([]domain.Project, error) {
	if m.FindDeadlinesFunc == nil {
		panic("projectRepoMock.FindDeadlinesFunc: method is nil but projectRepo.FindDeadlines was just called")
	}
	return m.FindDeadlinesFunc(ctx, userID, from, to, limit)
}

type progressRepoMock struct {
	LatestValuesFunc func(ctx context.Context, userID uuid.UUID, projectIDs []uuid.UUID) (map[uuid.UUID]int, error)
}

func (m *progressRepoMock) LatestValues(ctx context.Context, userID uuid.UUID, projectIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	if m.LatestValuesFunc == nil {
		panic("progressRepoMock.LatestValuesFunc: method is nil but progressRepo.LatestValues was just called")
	}
	return m.LatestValuesFunc(ctx, userID, projectIDs)
}
