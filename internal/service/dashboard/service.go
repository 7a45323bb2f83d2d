// Package dashboard aggregates a user's stash into the overview numbers
// shown on the home screen. Nothing it computes is stored.
package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
)

type yarnRepo interface {
	Totals(ctx context.Context, userID uuid.UUID) (domain.YarnTotals, error)
	CountByWeight(ctx context.Context, userID uuid.UUID) ([]domain.WeightCount, error)
	CountByColor(ctx context.Context, userID uuid.UUID) ([]domain.ColorCount, error)
	CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
}

type patternRepo interface {
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
}

type projectRepo interface {
	CountByStatus(ctx context.Context, userID uuid.UUID) (map[domain.ProjectStatus]int, error)
	CountStartedSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
	CountCompletedSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
	FindInProgress(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Project, error)
	FindDeadlines(ctx context.Context, userID uuid.UUID, from, to time.Time, limit int) ([]domain.Project, error)
}

type progressRepo interface {
	LatestValues(ctx context.Context, userID uuid.UUID, projectIDs []uuid.UUID) (map[uuid.UUID]int, error)
}

// Service computes dashboard views.
type Service struct {
	yarn     yarnRepo
	patterns patternRepo
	projects projectRepo
	progress progressRepo
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new dashboard service.
func NewService(
	log *slog.Logger,
	yarn yarnRepo,
	patterns patternRepo,
	projects projectRepo,
	progress progressRepo,
) *Service {
	return &Service{
		yarn:     yarn,
		patterns: patterns,
		projects: projects,
		progress: progress,
		log:      log.With("service", "dashboard"),
		now:      time.Now,
	}
}
