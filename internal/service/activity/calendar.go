package activity

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
	"github.com/heartmarshall/yarnstash-backend/pkg/ctxutil"
)

const dayKeyLayout = "2006-01-02"

// GetCalendar buckets one month of activity by UTC day. The month window
// is [first day, first day of next month) in UTC.
func (s *Service) GetCalendar(ctx context.Context, input CalendarInput) (*domain.ActivityCalendar, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	start := time.Date(input.Year, time.Month(input.Month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var (
		yarn     []domain.YarnStock
		patterns []domain.Pattern
		projects []domain.Project
		progress []domain.ProjectProgress
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		yarn, err = s.yarn.FindCreatedBetween(gctx, userID, start, end)
		return wrap("calendar yarn", err)
	})
	g.Go(func() (err error) {
		patterns, err = s.patterns.FindCreatedBetween(gctx, userID, start, end)
		return wrap("calendar patterns", err)
	})
	g.Go(func() (err error) {
		projects, err = s.projects.FindActiveBetween(gctx, userID, start, end)
		return wrap("calendar projects", err)
	})
	g.Go(func() (err error) {
		progress, err = s.progress.FindBetween(gctx, userID, start, end)
		return wrap("calendar progress", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	cal := calendarBuilder{start: start, end: end, days: map[string][]domain.CalendarItem{}}

	for i := range yarn {
		y := &yarn[i]
		cal.add(domain.CalendarTypeYarn, y.ID, "Added yarn: "+yarnLabel(y), y.CreatedAt)
	}
	for _, p := range patterns {
		cal.add(domain.CalendarTypePattern, p.ID, "Added pattern: "+p.Title, p.CreatedAt)
	}
	for _, p := range projects {
		cal.add(domain.CalendarTypeProject, p.ID, "Started: "+p.Name, p.CreatedAt)
		if p.CompletionDate != nil {
			cal.add(domain.CalendarTypeProjectComplete, p.ID, "Completed: "+p.Name, *p.CompletionDate)
		}
	}
	for _, p := range progress {
		cal.add(domain.CalendarTypeProgress, p.ID, "Progress: "+p.ProjectName, p.ProgressDate)
	}

	for _, items := range cal.days {
		sort.SliceStable(items, func(i, j int) bool { return items[i].Time.Before(items[j].Time) })
	}

	return &domain.ActivityCalendar{
		Year:     input.Year,
		Month:    input.Month,
		Calendar: cal.days,
	}, nil
}

type calendarBuilder struct {
	start, end time.Time
	days       map[string][]domain.CalendarItem
}

// add places an item on its UTC day when at falls inside the month.
func (c *calendarBuilder) add(typ string, id uuid.UUID, title string, at time.Time) {
	if at.Before(c.start) || !at.Before(c.end) {
		return
	}
	key := at.UTC().Format(dayKeyLayout)
	c.days[key] = append(c.days[key], domain.CalendarItem{Type: typ, ID: id, Title: title, Time: at})
}
