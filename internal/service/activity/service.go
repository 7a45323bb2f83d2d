package activity

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
)

type yarnRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.YarnStock, error)
	FindRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.YarnStock, error)
	FindCreatedBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.YarnStock, error)
	CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
}

type patternRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Pattern, error)
	FindRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Pattern, error)
	FindCreatedBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.Pattern, error)
	CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
}

type projectRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Project, error)
	FindRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Project, error)
	FindCreatedBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.Project, error)
	FindActiveBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.Project, error)
	CountStartedSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
	CountCompletedSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
}

type progressRepo interface {
	FindRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ProjectProgress, error)
	FindBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.ProjectProgress, error)
	CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Feed paging defaults.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Options controls feed paging.
type Options struct {
	DefaultLimit int
	MaxLimit     int
}

// Service reads the activity of a user across yarn, patterns, projects and
// progress entries. Nothing it returns is persisted.
type Service struct {
	yarn     yarnRepo
	patterns patternRepo
	projects projectRepo
	progress progressRepo
	users    userRepo
	sources  []source
	opts     Options
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new activity service.
func NewService(
	log *slog.Logger,
	yarn yarnRepo,
	patterns patternRepo,
	projects projectRepo,
	progress progressRepo,
	users userRepo,
	opts Options,
) *Service {
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = DefaultLimit
	}
	if opts.MaxLimit < opts.DefaultLimit {
		opts.MaxLimit = max(MaxLimit, opts.DefaultLimit)
	}
	return &Service{
		yarn:     yarn,
		patterns: patterns,
		projects: projects,
		progress: progress,
		users:    users,
		sources: []source{
			yarnSource{repo: yarn},
			patternSource{repo: patterns},
			projectSource{repo: projects},
			progressSource{repo: progress},
		},
		opts: opts,
		log:  log.With("service", "activity"),
		now:  time.Now,
	}
}
