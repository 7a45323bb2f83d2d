// Package project implements the project repository using PostgreSQL.
package project

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/yarnstash-backend/internal/adapter/postgres"
	"github.com/heartmarshall/yarnstash-backend/internal/domain"
)

// Repo provides project persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new project repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

var columns = []string{
	"pr.id", "pr.user_id", "pr.pattern_id", "pr.project_name", "pr.status", "pr.priority",
	"pr.start_date", "pr.target_completion_date", "pr.completion_date", "pr.total_hours_worked",
	"pr.size_making", "pr.modifications", "pr.recipient", "pr.created_at", "pr.updated_at",
	"p.title AS pattern_title",
}

func selectProjects(userID uuid.UUID) squirrel.SelectBuilder {
	return fromProjects(userID, columns...)
}

func fromProjects(userID uuid.UUID, cols ...string) squirrel.SelectBuilder {
	return postgres.Builder().
		Select(cols...).
		From("projects pr").
		LeftJoin("patterns p ON p.id = pr.pattern_id").
		Where(squirrel.Eq{"pr.user_id": userID})
}

func applyFilter(b squirrel.SelectBuilder, f domain.ProjectFilter) squirrel.SelectBuilder {
	if f.Status != "" {
		b = b.Where(squirrel.Eq{"pr.status": string(f.Status)})
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		b = b.Where(squirrel.Or{
			squirrel.ILike{"pr.project_name": like},
			squirrel.ILike{"pr.modifications": like},
			squirrel.ILike{"pr.recipient": like},
		})
	}
	return b
}

// ---------------------------------------------------------------------------
// Projects
// ---------------------------------------------------------------------------

// GetByID returns a single project owned by the user.
func (r *Repo) GetByID(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var p domain.Project
	if err := postgres.GetOne(ctx, q, &p, selectProjects(userID).Where(squirrel.Eq{"pr.id": projectID})); err != nil {
		return nil, postgres.MapError(err, "project", projectID)
	}
	return &p, nil
}

// List returns one page of the user's projects matching f, highest
// priority and most recently touched first, and the number matching f.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, f domain.ProjectFilter) ([]domain.Project, int, error) {
	total, err := r.count(ctx, applyFilter(fromProjects(userID, "COUNT(*)"), f))
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.list(ctx, applyFilter(selectProjects(userID), f).
		OrderBy("pr.priority DESC", "pr.updated_at DESC", "pr.id DESC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)))
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// FindInProgress returns up to limit active or hibernating projects, most
// recently touched first.
func (r *Repo) FindInProgress(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Project, error) {
	return r.list(ctx, selectProjects(userID).
		Where(squirrel.Eq{"pr.status": []string{
			string(domain.ProjectStatusActive),
			string(domain.ProjectStatusHibernating),
		}}).
		OrderBy("pr.updated_at DESC", "pr.id DESC").
		Limit(uint64(limit)))
}

// FindDeadlines returns up to limit queued or active projects whose target
// completion date falls in [from, to], soonest first.
func (r *Repo) FindDeadlines(ctx context.Context, userID uuid.UUID, from, to time.Time, limit int) ([]domain.Project, error) {
	return r.list(ctx, selectProjects(userID).
		Where(squirrel.Eq{"pr.status": []string{
			string(domain.ProjectStatusActive),
			string(domain.ProjectStatusQueued),
		}}).
		Where(squirrel.GtOrEq{"pr.target_completion_date": from}).
		Where(squirrel.LtOrEq{"pr.target_completion_date": to}).
		OrderBy("pr.target_completion_date", "pr.id").
		Limit(uint64(limit)))
}

// CountByStatus counts the user's projects per status. Statuses with no
// projects are absent from the map.
func (r *Repo) CountByStatus(ctx context.Context, userID uuid.UUID) (map[domain.ProjectStatus]int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var rows []struct {
		Status string
		Count  int
	}
	err := postgres.SelectAll(ctx, q, &rows, postgres.Builder().
		Select("status", "COUNT(*) AS count").
		From("projects").
		Where(squirrel.Eq{"user_id": userID}).
		GroupBy("status"))
	if err != nil {
		return nil, fmt.Errorf("count projects by status: %w", err)
	}

	counts := make(map[domain.ProjectStatus]int, len(rows))
	for _, row := range rows {
		counts[domain.ProjectStatus(row.Status)] = row.Count
	}
	return counts, nil
}

// ListByUser returns every project owned by the user, newest first.
// Yarn usage and progress are not loaded.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Project, error) {
	return r.list(ctx, selectProjects(userID).OrderBy("pr.created_at DESC", "pr.id DESC"))
}

// FindRecent returns up to limit most recently created projects.
func (r *Repo) FindRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Project, error) {
	return r.list(ctx, selectProjects(userID).
		OrderBy("pr.created_at DESC", "pr.id DESC").
		Limit(uint64(limit)))
}

// FindCreatedBetween returns projects created in [start, end), newest first.
func (r *Repo) FindCreatedBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.Project, error) {
	return r.list(ctx, selectProjects(userID).
		Where(squirrel.GtOrEq{"pr.created_at": start}).
		Where(squirrel.Lt{"pr.created_at": end}).
		OrderBy("pr.created_at DESC", "pr.id DESC"))
}

// FindActiveBetween returns projects that were created or completed in
// [start, end), newest first.
func (r *Repo) FindActiveBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.Project, error) {
	return r.list(ctx, selectProjects(userID).
		Where(squirrel.Or{
			squirrel.And{
				squirrel.GtOrEq{"pr.created_at": start},
				squirrel.Lt{"pr.created_at": end},
			},
			squirrel.And{
				squirrel.GtOrEq{"pr.completion_date": start},
				squirrel.Lt{"pr.completion_date": end},
			},
		}).
		OrderBy("pr.created_at DESC", "pr.id DESC"))
}

// CountStartedSince counts projects created at or after since.
func (r *Repo) CountStartedSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	return r.count(ctx, postgres.Builder().
		Select("COUNT(*)").
		From("projects").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"created_at": since}))
}

// CountCompletedSince counts projects in completed status whose completion
// date is at or after since. A reopened project keeps its completion date
// but is not counted.
func (r *Repo) CountCompletedSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	return r.count(ctx, postgres.Builder().
		Select("COUNT(*)").
		From("projects").
		Where(squirrel.Eq{"user_id": userID, "status": string(domain.ProjectStatusCompleted)}).
		Where(squirrel.GtOrEq{"completion_date": since}))
}

func (r *Repo) list(ctx context.Context, b squirrel.SelectBuilder) ([]domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows := []domain.Project{}
	if err := postgres.SelectAll(ctx, q, &rows, b); err != nil {
		return nil, fmt.Errorf("select projects: %w", err)
	}
	return rows, nil
}

func (r *Repo) count(ctx context.Context, b squirrel.SelectBuilder) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := postgres.Count(ctx, q, b)
	if err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return n, nil
}

// Create inserts a project. ID and timestamps are filled in when zero.
func (r *Repo) Create(ctx context.Context, p *domain.Project) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	p.UpdatedAt = p.CreatedAt
	if p.Status == "" {
		p.Status = domain.ProjectStatusQueued
	}

	_, err := postgres.ExecBuilt(ctx, q, postgres.Builder().
		Insert("projects").
		Columns("id", "user_id", "pattern_id", "project_name", "status", "priority",
			"start_date", "target_completion_date", "completion_date", "total_hours_worked",
			"size_making", "modifications", "recipient", "created_at", "updated_at").
		Values(p.ID, p.UserID, p.PatternID, p.Name, string(p.Status), p.Priority,
			p.StartDate, p.TargetCompletionDate, p.CompletionDate, p.TotalHoursWorked,
			p.SizeMaking, p.Modifications, p.Recipient, p.CreatedAt, p.UpdatedAt))
	if err != nil {
		return postgres.MapError(err, "project", p.ID)
	}
	return nil
}

// Update replaces the editable columns of a project owned by p.UserID.
// total_hours_worked is owned by AddHours and left alone.
func (r *Repo) Update(ctx context.Context, p *domain.Project) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p.UpdatedAt = time.Now().UTC()

	n, err := postgres.ExecBuilt(ctx, q, postgres.Builder().
		Update("projects").
		SetMap(map[string]any{
			"pattern_id":             p.PatternID,
			"project_name":           p.Name,
			"status":                 string(p.Status),
			"priority":               p.Priority,
			"start_date":             p.StartDate,
			"target_completion_date": p.TargetCompletionDate,
			"completion_date":        p.CompletionDate,
			"size_making":            p.SizeMaking,
			"modifications":          p.Modifications,
			"recipient":              p.Recipient,
			"updated_at":             p.UpdatedAt,
		}).
		Where(squirrel.Eq{"id": p.ID, "user_id": p.UserID}))
	if err != nil {
		return postgres.MapError(err, "project", p.ID)
	}
	if n == 0 {
		return fmt.Errorf("project %s: %w", p.ID, domain.ErrNotFound)
	}
	return nil
}

// AddHours adds hours to the project's running total.
func (r *Repo) AddHours(ctx context.Context, userID, projectID uuid.UUID, hours float64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := postgres.ExecBuilt(ctx, q, postgres.Builder().
		Update("projects").
		Set("total_hours_worked", squirrel.Expr("COALESCE(total_hours_worked, 0) + ?", hours)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": projectID, "user_id": userID}))
	if err != nil {
		return postgres.MapError(err, "project", projectID)
	}
	if n == 0 {
		return fmt.Errorf("project %s: %w", projectID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a project owned by the user with its usage and progress rows.
func (r *Repo) Delete(ctx context.Context, userID, projectID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := postgres.ExecBuilt(ctx, q, postgres.Builder().
		Delete("projects").
		Where(squirrel.Eq{"id": projectID, "user_id": userID}))
	if err != nil {
		return postgres.MapError(err, "project", projectID)
	}
	if n == 0 {
		return fmt.Errorf("project %s: %w", projectID, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Yarn usage
// ---------------------------------------------------------------------------

// ListYarnUsageByUser returns every yarn usage row of the user's projects.
func (r *Repo) ListYarnUsageByUser(ctx context.Context, userID uuid.UUID) ([]domain.ProjectYarnUsage, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows := []domain.ProjectYarnUsage{}
	err := postgres.SelectAll(ctx, q, &rows, postgres.Builder().
		Select("u.id", "u.project_id", "u.yarn_inventory_id", "u.skeins_used",
			"u.yardage_used", "u.usage_notes", "u.added_at").
		From("project_yarn_usage u").
		Join("projects pr ON pr.id = u.project_id").
		Where(squirrel.Eq{"pr.user_id": userID}).
		OrderBy("u.added_at", "u.id"))
	if err != nil {
		return nil, fmt.Errorf("select project_yarn_usage: %w", err)
	}
	return rows, nil
}
