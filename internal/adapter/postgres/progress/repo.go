// Package progress implements the project progress repository using PostgreSQL.
package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/yarnstash-backend/internal/adapter/postgres"
	"github.com/heartmarshall/yarnstash-backend/internal/domain"
)

// Repo provides project progress persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new progress repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

// Progress rows carry no user_id; ownership comes from the parent project.
func selectProgress(userID uuid.UUID) squirrel.SelectBuilder {
	return postgres.Builder().
		Select("pp.id", "pp.project_id", "pp.progress_date", "pp.progress_type",
			"pp.progress_value", "pp.progress_description", "pp.hours_worked",
			"pp.notes", "pp.created_at", "pr.project_name").
		From("project_progress pp").
		Join("projects pr ON pr.id = pp.project_id").
		Where(squirrel.Eq{"pr.user_id": userID})
}

// ListByUser returns every progress entry of the user's projects, oldest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ProjectProgress, error) {
	return r.list(ctx, selectProgress(userID).OrderBy("pp.progress_date", "pp.id"))
}

// FindRecent returns up to limit most recently logged entries.
func (r *Repo) FindRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ProjectProgress, error) {
	return r.list(ctx, selectProgress(userID).
		OrderBy("pp.created_at DESC", "pp.id DESC").
		Limit(uint64(limit)))
}

// FindBetween returns entries whose progress date falls in [start, end).
func (r *Repo) FindBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.ProjectProgress, error) {
	return r.list(ctx, selectProgress(userID).
		Where(squirrel.GtOrEq{"pp.progress_date": start}).
		Where(squirrel.Lt{"pp.progress_date": end}).
		OrderBy("pp.progress_date DESC", "pp.id DESC"))
}

// CountSince counts entries logged at or after since.
func (r *Repo) CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := postgres.Count(ctx, q, postgres.Builder().
		Select("COUNT(*)").
		From("project_progress pp").
		Join("projects pr ON pr.id = pp.project_id").
		Where(squirrel.Eq{"pr.user_id": userID}).
		Where(squirrel.GtOrEq{"pp.created_at": since}))
	if err != nil {
		return 0, fmt.Errorf("count project_progress: %w", err)
	}
	return n, nil
}

func (r *Repo) list(ctx context.Context, b squirrel.SelectBuilder) ([]domain.ProjectProgress, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows := []domain.ProjectProgress{}
	if err := postgres.SelectAll(ctx, q, &rows, b); err != nil {
		return nil, fmt.Errorf("select project_progress: %w", err)
	}
	return rows, nil
}

// ListByProject returns the entries of one of the user's projects, latest
// progress date first.
func (r *Repo) ListByProject(ctx context.Context, userID, projectID uuid.UUID) ([]domain.ProjectProgress, error) {
	return r.list(ctx, selectProgress(userID).
		Where(squirrel.Eq{"pp.project_id": projectID}).
		OrderBy("pp.progress_date DESC", "pp.id DESC"))
}

// LatestValues returns the progress value of the most recently logged
// entry of each project in projectIDs. Projects with no entries, or whose
// latest entry has no value, are absent from the map.
func (r *Repo) LatestValues(ctx context.Context, userID uuid.UUID, projectIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	out := make(map[uuid.UUID]int, len(projectIDs))
	if len(projectIDs) == 0 {
		return out, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	var rows []struct {
		ProjectID     uuid.UUID
		ProgressValue *int
	}
	err := postgres.SelectAll(ctx, q, &rows, postgres.Builder().
		Select("pp.project_id", "pp.progress_value").
		Options("DISTINCT ON (pp.project_id)").
		From("project_progress pp").
		Join("projects pr ON pr.id = pp.project_id").
		Where(squirrel.Eq{"pr.user_id": userID, "pp.project_id": projectIDs}).
		OrderBy("pp.project_id", "pp.created_at DESC", "pp.id DESC"))
	if err != nil {
		return nil, fmt.Errorf("select latest project_progress: %w", err)
	}

	for _, row := range rows {
		if row.ProgressValue != nil {
			out[row.ProjectID] = *row.ProgressValue
		}
	}
	return out, nil
}

// Create inserts a progress entry. The caller checks project ownership.
func (r *Repo) Create(ctx context.Context, p *domain.ProjectProgress) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	if p.ProgressDate.IsZero() {
		p.ProgressDate = p.CreatedAt
	}

	_, err := postgres.ExecBuilt(ctx, q, postgres.Builder().
		Insert("project_progress").
		Columns("id", "project_id", "progress_date", "progress_type", "progress_value",
			"progress_description", "hours_worked", "notes", "created_at").
		Values(p.ID, p.ProjectID, p.ProgressDate, p.ProgressType, p.ProgressValue,
			p.ProgressDescription, p.HoursWorked, p.Notes, p.CreatedAt))
	if err != nil {
		return postgres.MapError(err, "project_progress", p.ID)
	}
	return nil
}
