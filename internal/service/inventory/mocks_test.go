package inventory

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
	_ txManager    = &txManagerMock{}
)

type yarnRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID, yarnID uuid.UUID) (*domain.YarnStock, error)
	ListFunc    func(ctx context.Context, userID uuid.UUID, f domain.YarnFilter) ([]domain.YarnStock, int, error)
	CreateFunc  func(ctx context.Context, y *domain.YarnStock) error
	UpdateFunc  func(ctx context.Context, y *domain.YarnStock) error
	DeleteFunc  func(ctx context.Context, userID, yarnID uuid.UUID) error
}

func (m *yarnRepoMock) GetByID(ctx context.Context, userID, yarnID uuid.UUID) (*domain.YarnStock, error) {
	if m.GetByIDFunc == nil {
		panic("yarnRepoMock.GetByIDFunc: method is nil but yarnRepo.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, userID, yarnID)
}

func (m *yarnRepoMock) List(ctx context.Context, userID uuid.UUID, f domain.YarnFilter) ([]domain.YarnStock, int, error) {
	if m.ListFunc == nil {
		panic("yarnRepoMock.ListFunc: method is nil but yarnRepo.List was just called")
	}
	return m.ListFunc(ctx, userID, f)
}

func (m *yarnRepoMock) Create(ctx context.Context, y *domain.YarnStock) error {
	if m.CreateFunc == nil {
		panic("yarnRepoMock.CreateFunc: method is nil but yarnRepo.Create was just called")
	}
	return m.CreateFunc(ctx, y)
}

func (m *yarnRepoMock) Update(ctx context.Context, y *domain.YarnStock) error {
	if m.UpdateFunc == nil {
		panic("yarnRepoMock.UpdateFunc: method is nil but yarnRepo.Update was just called")
	}
	return m.UpdateFunc(ctx, y)
}

func (m *yarnRepoMock) Delete(ctx context.Context, userID, yarnID uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("yarnRepoMock.DeleteFunc: method is nil but yarnRepo.Delete was just called")
	}
	return m.DeleteFunc(ctx, userID, yarnID)
}

type patternRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID, patternID uuid.UUID) (*domain.Pattern, error)
	ListFunc    func(ctx context.Context, userID uuid.UUID, f domain.PatternFilter) ([]domain.Pattern, int, error)
	CreateFunc  func(ctx context.Context, p *domain.Pattern) error
	UpdateFunc  func(ctx context.Context, p *domain.Pattern) error
	DeleteFunc  func(ctx context.Context, userID, patternID uuid.UUID) error
}

func (m *patternRepoMock) GetByID(ctx context.Context, userID, patternID uuid.UUID) (*domain.Pattern, error) {
	if m.GetByIDFunc == nil {
		panic("patternRepoMock.GetByIDFunc: method is nil but patternRepo.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, userID, patternID)
}

func (m *patternRepoMock) List(ctx context.Context, userID uuid.UUID, f domain.PatternFilter) ([]domain.Pattern, int, error) {
	if m.ListFunc == nil {
		panic("patternRepoMock.ListFunc: method is nil but patternRepo.List was just called")
	}
	return m.ListFunc(ctx, userID, f)
}

func (m *patternRepoMock) Create(ctx context.Context, p *domain.Pattern) error {
	if m.CreateFunc == nil {
		panic("patternRepoMock.CreateFunc: method is nil but patternRepo.Create was just called")
	}
	return m.CreateFunc(ctx, p)
}

func (m *patternRepoMock) Update(ctx context.Context, p *domain.Pattern) error {
	if m.UpdateFunc == nil {
		panic("patternRepoMock.UpdateFunc: method is nil but patternRepo.Update was just called")
	}
	return m.UpdateFunc(ctx, p)
}

func (m *patternRepoMock) Delete(ctx context.Context, userID, patternID uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("patternRepoMock.DeleteFunc: method is nil but patternRepo.Delete was just called")
	}
	return m.DeleteFunc(ctx, userID, patternID)
}

type projectRepoMock struct {
	GetByIDFunc  func(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error)
	ListFunc     func(ctx context.Context, userID uuid.UUID, f domain.ProjectFilter) ([]domain.Project, int, error)
	CreateFunc   func(ctx context.Context, p *domain.Project) error
	UpdateFunc   func(ctx context.Context, p *domain.Project) error
	AddHoursFunc func(ctx context.Context, userID, projectID uuid.UUID, hours float64) error
	DeleteFunc   func(ctx context.Context, userID, projectID uuid.UUID) error
}

func (m *projectRepoMock) GetByID(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error) {
	if m.GetByIDFunc == nil {
		panic("projectRepoMock.GetByIDFunc: method is nil but projectRepo.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, userID, projectID)
}

func (m *projectRepoMock) List(ctx context.Context, userID uuid.UUID, f domain.ProjectFilter) ([]domain.Project, int, error) {
	if m.ListFunc == nil {
		panic("projectRepoMock.ListFunc: method is nil but projectRepo.List was just called")
	}
	return m.ListFunc(ctx, userID, f)
}

func (m *projectRepoMock) Create(ctx context.Context, p *domain.Project) error {
	if m.CreateFunc == nil {
		panic("projectRepoMock.CreateFunc: method is nil but projectRepo.Create was just called")
	}
	return m.CreateFunc(ctx, p)
}

func (m *projectRepoMock) Update(ctx context.Context, p *domain.Project) error {
	if m.UpdateFunc == nil {
		panic("projectRepoMock.UpdateFunc: method is nil but projectRepo.Update was just called")
	}
	return m.UpdateFunc(ctx, p)
}

func (m *projectRepoMock) AddHours(ctx context.Context, userID, projectID uuid.UUID, hours float64) error {
	if m.AddHoursFunc == nil {
		panic("projectRepoMock.AddHoursFunc: method is nil but projectRepo.AddHours was just called")
	}
	return m.AddHoursFunc(ctx, userID, projectID, hours)
}

func (m *projectRepoMock) Delete(ctx context.Context, userID, projectID uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("projectRepoMock.DeleteFunc: method is nil but projectRepo.Delete was just called")
	}
	return m.DeleteFunc(ctx, userID, projectID)
}

type progressRepoMock struct {
	CreateFunc        func(ctx context.Context, p *domain.ProjectProgress) error
	ListByProjectFunc func(ctx context.Context, userID, projectID uuid.UUID) ([]domain.ProjectProgress, error)
}

func (m *progressRepoMock) Create(ctx context.Context, p *domain.ProjectProgress) error {
	if m.CreateFunc == nil {
		panic("progressRepoMock.CreateFunc: method is nil but progressRepo.Create was just called")
	}
	return m.CreateFunc(ctx, p)
}

func (m *progressRepoMock) ListByProject(ctx context.Context, userID, projectID uuid.UUID) ([]domain.ProjectProgress, error) {
	if m.ListByProjectFunc == nil {
		panic("progressRepoMock.ListByProjectFunc: method is nil but progressRepo.ListByProject was just called")
	}
	return m.ListByProjectFunc(ctx, userID, projectID)
}

// txManagerMock runs fn inline and counts transactions.
type txManagerMock struct {
	mu    sync.Mutex
	count int
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	m.count++
	m.mu.Unlock()
	return fn(ctx)
}

func (m *txManagerMock) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.count
}
