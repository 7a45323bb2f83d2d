// Package inventory manages the user's yarn stash, pattern library and
// projects, including the progress log of each project.
package inventory

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
)

type yarnRepo interface {
	GetByID(ctx context.Context, userID, yarnID uuid.UUID) (*domain.YarnStock, error)
	List(ctx context.Context, userID uuid.UUID, f domain.YarnFilter) ([]domain.YarnStock, int, error)
	Create(ctx context.Context, y *domain.YarnStock) error
	Update(ctx context.Context, y *domain.YarnStock) error
	Delete(ctx context.Context, userID, yarnID uuid.UUID) error
}

type patternRepo interface {
	GetByID(ctx context.Context, userID, patternID uuid.UUID) (*domain.Pattern, error)
	List(ctx context.Context, userID uuid.UUID, f domain.PatternFilter) ([]domain.Pattern, int, error)
	Create(ctx context.Context, p *domain.Pattern) error
	Update(ctx context.Context, p *domain.Pattern) error
	Delete(ctx context.Context, userID, patternID uuid.UUID) error
}

type projectRepo interface {
	GetByID(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error)
	List(ctx context.Context, userID uuid.UUID, f domain.ProjectFilter) ([]domain.Project, int, error)
	Create(ctx context.Context, p *domain.Project) error
	Update(ctx context.Context, p *domain.Project) error
	AddHours(ctx context.Context, userID, projectID uuid.UUID, hours float64) error
	Delete(ctx context.Context, userID, projectID uuid.UUID) error
}

type progressRepo interface {
	Create(ctx context.Context, p *domain.ProjectProgress) error
	ListByProject(ctx context.Context, userID, projectID uuid.UUID) ([]domain.ProjectProgress, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements inventory operations.
type Service struct {
	log      *slog.Logger
	yarn     yarnRepo
	patterns patternRepo
	projects projectRepo
	progress progressRepo
	tx       txManager
	now      func() time.Time
}

// NewService creates a new inventory service.
func NewService(
	logger *slog.Logger,
	yarn yarnRepo,
	patterns patternRepo,
	projects projectRepo,
	progress progressRepo,
	tx txManager,
) *Service {
	return &Service{
		log:      logger.With("service", "inventory"),
		yarn:     yarn,
		patterns: patterns,
		projects: projects,
		progress: progress,
		tx:       tx,
		now:      time.Now,
	}
}
