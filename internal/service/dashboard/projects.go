package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
	"github.com/heartmarshall/yarnstash-backend/pkg/ctxutil"
)

// GetRecentProjects returns the most recently touched active or
// hibernating projects with the value of their latest progress entry.
func (s *Service) GetRecentProjects(ctx context.Context, input RecentProjectsInput) ([]domain.ProjectWithProgress, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultRecentProjects
	}

	projects, err := s.projects.FindInProgress(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("find projects in progress: %w", err)
	}

	ids := make([]uuid.UUID, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
	}
	latest, err := s.progress.LatestValues(ctx, userID, ids)
	if err != nil {
		return nil, fmt.Errorf("latest progress: %w", err)
	}

	out := make([]domain.ProjectWithProgress, len(projects))
	for i, p := range projects {
		out[i] = domain.ProjectWithProgress{Project: p, ProgressPercentage: latest[p.ID]}
	}
	return out, nil
}

// GetUpcomingDeadlines returns up to ten queued or active projects due
// within the next input.Days days, soonest first.
func (s *Service) GetUpcomingDeadlines(ctx context.Context, input DeadlinesInput) ([]domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	days := input.Days
	if days == 0 {
		days = DefaultDeadlineDays
	}
	now := s.now()

	projects, err := s.projects.FindDeadlines(ctx, userID, now, now.AddDate(0, 0, days), deadlineLimit)
	if err != nil {
		return nil, fmt.Errorf("find deadlines: %w", err)
	}
	return projects, nil
}

// GetCompletionRate compares projects started with projects completed in
// the trailing period. The rate is a percentage with one decimal place and
// may exceed 100 when older projects were finished in the period.
func (s *Service) GetCompletionRate(ctx context.Context, input CompletionRateInput) (*domain.CompletionRate, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	period := input.Period
	if period == "" {
		period = domain.CompletionPeriodYear
	}
	since := PeriodStart(s.now(), period)

	rate := &domain.CompletionRate{Period: period, StartDate: since}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		rate.ProjectsStarted, err = s.projects.CountStartedSince(gctx, userID, since)
		return wrap("count started projects", err)
	})
	g.Go(func() (err error) {
		rate.ProjectsCompleted, err = s.projects.CountCompletedSince(gctx, userID, since)
		return wrap("count completed projects", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if rate.ProjectsStarted > 0 {
		rate.CompletionRate = round(float64(rate.ProjectsCompleted)/float64(rate.ProjectsStarted)*100, 1)
	}
	return rate, nil
}

// PeriodStart subtracts one completion period from now using calendar
// arithmetic.
func PeriodStart(now time.Time, p domain.CompletionPeriod) time.Time {
	switch p {
	case domain.CompletionPeriodMonth:
		return now.AddDate(0, -1, 0)
	case domain.CompletionPeriodQuarter:
		return now.AddDate(0, -3, 0)
	default:
		return now.AddDate(-1, 0, 0)
	}
}
