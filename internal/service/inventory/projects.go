package inventory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
	"github.com/heartmarshall/yarnstash-backend/pkg/ctxutil"
)

// ListProjects returns one page of the user's projects, highest priority
// first.
func (s *Service) ListProjects(ctx context.Context, input ProjectListInput) (*Page[domain.Project], error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	page, limit, offset := input.resolve()
	items, total, err := s.projects.List(ctx, userID, domain.ProjectFilter{
		Status: input.Status,
		Search: input.Search,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return newPage(items, total, page, limit), nil
}

// GetProject returns one project with its progress log, latest first.
func (s *Service) GetProject(ctx context.Context, projectID uuid.UUID) (*domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.projects.GetByID(ctx, userID, projectID)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	p.Progress, err = s.progress.ListByProject(ctx, userID, projectID)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	return p, nil
}

// CreateProject starts a project. A referenced pattern must belong to the
// user.
func (s *Service) CreateProject(ctx context.Context, input ProjectInput) (*domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkPattern(ctx, userID, input.PatternID); err != nil {
		return nil, err
	}

	p := &domain.Project{
		UserID:    userID,
		Status:    domain.ProjectStatusQueued,
		CreatedAt: s.now().UTC(),
	}
	input.apply(p)
	if err := s.projects.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	s.log.InfoContext(ctx, "project created",
		slog.String("user_id", userID.String()),
		slog.String("project_id", p.ID.String()),
		slog.String("status", p.Status.String()),
	)
	return p, nil
}

// UpdateProject replaces the editable state of a project. Moving it to
// completed without a completion date stamps the current time.
func (s *Service) UpdateProject(ctx context.Context, projectID uuid.UUID, input ProjectInput) (*domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkPattern(ctx, userID, input.PatternID); err != nil {
		return nil, err
	}

	var p *domain.Project
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		p, err = s.projects.GetByID(txCtx, userID, projectID)
		if err != nil {
			return fmt.Errorf("get project: %w", err)
		}
		wasCompleted := p.IsCompleted()
		input.apply(p)
		if p.IsCompleted() && !wasCompleted && p.CompletionDate == nil {
			now := s.now().UTC()
			p.CompletionDate = &now
		}
		if err := s.projects.Update(txCtx, p); err != nil {
			return fmt.Errorf("update project: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "project updated",
		slog.String("user_id", userID.String()),
		slog.String("project_id", projectID.String()),
	)
	return p, nil
}

// UpdateProjectStatus moves a project to a new status. Becoming active
// sets the start date when it is unset; becoming completed sets the
// completion date.
func (s *Service) UpdateProjectStatus(ctx context.Context, projectID uuid.UUID, input StatusInput) (*domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var p *domain.Project
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		p, err = s.projects.GetByID(txCtx, userID, projectID)
		if err != nil {
			return fmt.Errorf("get project: %w", err)
		}

		now := s.now().UTC()
		p.Status = input.Status
		switch input.Status {
		case domain.ProjectStatusActive:
			if p.StartDate == nil {
				p.StartDate = &now
			}
		case domain.ProjectStatusCompleted:
			p.CompletionDate = &now
		}

		if err := s.projects.Update(txCtx, p); err != nil {
			return fmt.Errorf("update project: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "project status changed",
		slog.String("user_id", userID.String()),
		slog.String("project_id", projectID.String()),
		slog.String("status", input.Status.String()),
	)
	return p, nil
}

// DeleteProject removes a project with its yarn usage and progress log.
func (s *Service) DeleteProject(ctx context.Context, projectID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.projects.Delete(ctx, userID, projectID); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}

	s.log.InfoContext(ctx, "project deleted",
		slog.String("user_id", userID.String()),
		slog.String("project_id", projectID.String()),
	)
	return nil
}

// AddProgress logs a progress entry and adds its hours to the project's
// running total in one transaction.
func (s *Service) AddProgress(ctx context.Context, projectID uuid.UUID, input ProgressInput) (*domain.ProjectProgress, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	entry := &domain.ProjectProgress{
		ProjectID:           projectID,
		ProgressDate:        now,
		ProgressType:        input.ProgressType,
		ProgressValue:       input.ProgressValue,
		ProgressDescription: input.ProgressDescription,
		HoursWorked:         input.HoursWorked,
		Notes:               input.Notes,
		CreatedAt:           now,
	}
	if input.ProgressDate != nil {
		entry.ProgressDate = input.ProgressDate.UTC()
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := s.projects.GetByID(txCtx, userID, projectID)
		if err != nil {
			return fmt.Errorf("get project: %w", err)
		}
		entry.ProjectName = p.Name

		if err := s.progress.Create(txCtx, entry); err != nil {
			return fmt.Errorf("create progress: %w", err)
		}
		if entry.HoursWorked != nil && *entry.HoursWorked > 0 {
			if err := s.projects.AddHours(txCtx, userID, projectID, *entry.HoursWorked); err != nil {
				return fmt.Errorf("add hours: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "progress logged",
		slog.String("user_id", userID.String()),
		slog.String("project_id", projectID.String()),
		slog.String("progress_id", entry.ID.String()),
	)
	return entry, nil
}

// ListProgress returns a project's progress log, latest first.
func (s *Service) ListProgress(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectProgress, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.projects.GetByID(ctx, userID, projectID); err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	entries, err := s.progress.ListByProject(ctx, userID, projectID)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	return entries, nil
}

func (s *Service) checkPattern(ctx context.Context, userID uuid.UUID, patternID *uuid.UUID) error {
	if patternID == nil {
		return nil
	}
	_, err := s.patterns.GetByID(ctx, userID, *patternID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewValidationError("patternId", "unknown pattern")
	}
	if err != nil {
		return fmt.Errorf("get pattern: %w", err)
	}
	return nil
}
