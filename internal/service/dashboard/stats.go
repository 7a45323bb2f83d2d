package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
	"github.com/heartmarshall/yarnstash-backend/pkg/ctxutil"
)

// GetStats returns inventory counts, stash value, the weight breakdown and
// what was added in the last 30 days.
func (s *Service) GetStats(ctx context.Context) (*domain.DashboardStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := s.now()
	since := now.AddDate(0, 0, -statsWindowDays)

	var (
		totals   domain.YarnTotals
		weights  []domain.WeightCount
		patterns int
		byStatus map[domain.ProjectStatus]int
		recent   domain.NewItemCounts
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		totals, err = s.yarn.Totals(gctx, userID)
		return wrap("sum yarn", err)
	})
	g.Go(func() (err error) {
		weights, err = s.yarn.CountByWeight(gctx, userID)
		return wrap("count yarn by weight", err)
	})
	g.Go(func() (err error) {
		patterns, err = s.patterns.CountByUser(gctx, userID)
		return wrap("count patterns", err)
	})
	g.Go(func() (err error) {
		byStatus, err = s.projects.CountByStatus(gctx, userID)
		return wrap("count projects by status", err)
	})
	g.Go(func() (err error) {
		recent.NewYarn, err = s.yarn.CountSince(gctx, userID, since)
		return wrap("count new yarn", err)
	})
	g.Go(func() (err error) {
		recent.NewPatterns, err = s.patterns.CountSince(gctx, userID, since)
		return wrap("count new patterns", err)
	})
	g.Go(func() (err error) {
		recent.NewProjects, err = s.projects.CountStartedSince(gctx, userID, since)
		return wrap("count new projects", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &domain.DashboardStats{
		TotalYarn:         totals.Count,
		TotalPatterns:     patterns,
		ActiveProjects:    byStatus[domain.ProjectStatusActive],
		CompletedProjects: byStatus[domain.ProjectStatusCompleted],
		YarnValue:         round(totals.Value, 2),
		YarnByWeight:      weights,
		RecentActivity:    recent,
		LastUpdated:       now,
	}
	for _, n := range byStatus {
		stats.TotalProjects += n
	}

	s.log.InfoContext(ctx, "dashboard stats loaded",
		slog.String("user_id", userID.String()),
		slog.Int("yarn", stats.TotalYarn),
		slog.Int("projects", stats.TotalProjects),
	)

	return stats, nil
}

// GetYarnUsage reports how much yardage and how many skeins have been used
// across the stash, and the remaining yardage per color family.
func (s *Service) GetYarnUsage(ctx context.Context) (*domain.YarnUsage, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var (
		totals domain.YarnTotals
		colors []domain.ColorCount
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		totals, err = s.yarn.Totals(gctx, userID)
		return wrap("sum yarn", err)
	})
	g.Go(func() (err error) {
		colors, err = s.yarn.CountByColor(gctx, userID)
		return wrap("count yarn by color", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	usage := &domain.YarnUsage{
		TotalYardage:      totals.TotalYardage,
		RemainingYardage:  totals.RemainingYardage,
		YardageUsed:       totals.TotalYardage - totals.RemainingYardage,
		TotalSkeins:       totals.TotalSkeins,
		RemainingSkeins:   totals.RemainingSkeins,
		SkeinsUsed:        round(totals.TotalSkeins-totals.RemainingSkeins, 2),
		ColorDistribution: colors,
	}
	if totals.TotalYardage > 0 {
		usage.UsagePercentage = round(float64(usage.YardageUsed)/float64(totals.TotalYardage)*100, 1)
	}
	return usage, nil
}

func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}

func wrap(op string, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
