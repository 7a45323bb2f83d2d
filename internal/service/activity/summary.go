package activity

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
	"github.com/heartmarshall/yarnstash-backend/pkg/ctxutil"
)

// GetSummary counts activity in the trailing window ending now.
func (s *Service) GetSummary(ctx context.Context, input SummaryInput) (*domain.ActivitySummary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	period := input.Period
	if period == "" {
		period = domain.SummaryPeriodWeek
	}
	since := PeriodStart(s.now(), period)

	var c domain.ActivityCounts
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		c.YarnAdded, err = s.yarn.CountSince(gctx, userID, since)
		return wrap("count yarn", err)
	})
	g.Go(func() (err error) {
		c.PatternsAdded, err = s.patterns.CountSince(gctx, userID, since)
		return wrap("count patterns", err)
	})
	g.Go(func() (err error) {
		c.ProjectsStarted, err = s.projects.CountStartedSince(gctx, userID, since)
		return wrap("count started projects", err)
	})
	g.Go(func() (err error) {
		c.ProjectsCompleted, err = s.projects.CountCompletedSince(gctx, userID, since)
		return wrap("count completed projects", err)
	})
	g.Go(func() (err error) {
		c.ProgressUpdates, err = s.progress.CountSince(gctx, userID, since)
		return wrap("count progress", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c.TotalActivities = c.YarnAdded + c.PatternsAdded + c.ProjectsStarted + c.ProjectsCompleted + c.ProgressUpdates

	return &domain.ActivitySummary{
		Period:    period,
		StartDate: since,
		Summary:   c,
	}, nil
}

// PeriodStart subtracts one period unit from now. Month and year use
// calendar arithmetic.
func PeriodStart(now time.Time, p domain.SummaryPeriod) time.Time {
	switch p {
	case domain.SummaryPeriodDay:
		return now.AddDate(0, 0, -1)
	case domain.SummaryPeriodMonth:
		return now.AddDate(0, -1, 0)
	case domain.SummaryPeriodYear:
		return now.AddDate(-1, 0, 0)
	default:
		return now.AddDate(0, 0, -7)
	}
}

func wrap(op string, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
