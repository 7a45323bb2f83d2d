package activity

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
	"github.com/heartmarshall/yarnstash-backend/internal/export"
	"github.com/heartmarshall/yarnstash-backend/pkg/ctxutil"
)

// RecentResult is one page of the merged activity feed.
type RecentResult struct {
	Activities []domain.ActivityRecord `json:"activities"`
	Total      int                     `json:"total"`
	Page       int                     `json:"page"`
	TotalPages int                     `json:"totalPages"`
}

// GetRecentActivity merges the most recent rows of each requested family
// and returns one page of the result.
//
// Each family is capped at Limit rows before merging, so a family with many
// rows can be under-represented on later pages. Records are ordered by
// OccurredAt descending; ties keep family order (yarn, pattern, project,
// progress) and then the per-family fetch order.
func (s *Service) GetRecentActivity(ctx context.Context, input RecentInput) (*RecentResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.opts.DefaultLimit
	}
	limit = min(limit, s.opts.MaxLimit)
	page := max(input.Page, 1)

	included := s.selectSources(input.Types)
	perSource := make([][]domain.ActivityRecord, len(included))

	g, gctx := errgroup.WithContext(ctx)
	for i, src := range included {
		g.Go(func() error {
			recs, err := src.Recent(gctx, userID, limit)
			if err != nil {
				return err
			}
			perSource[i] = recs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := mergeRecords(perSource)

	total := len(merged)
	offset := total
	if page-1 <= total/limit {
		offset = min((page-1)*limit, total)
	}
	end := min(offset+limit, total)

	return &RecentResult{
		Activities: merged[offset:end],
		Total:      total,
		Page:       page,
		TotalPages: (total + limit - 1) / limit,
	}, nil
}

// selectSources returns the registered sources whose type is requested,
// in registry order.
func (s *Service) selectSources(types []domain.ActivityType) []source {
	if len(types) == 0 {
		return s.sources
	}
	out := make([]source, 0, len(types))
	for _, src := range s.sources {
		if slices.Contains(types, src.Type()) {
			out = append(out, src)
		}
	}
	return out
}

// mergeRecords concatenates the per-source slices and sorts them newest
// first. The sort is stable so equal timestamps keep concatenation order.
func mergeRecords(perSource [][]domain.ActivityRecord) []domain.ActivityRecord {
	merged := []domain.ActivityRecord{}
	for _, recs := range perSource {
		merged = append(merged, recs...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].OccurredAt.After(merged[j].OccurredAt)
	})
	return merged
}

// Table renders the page as one CSV section, one row per record.
func (r *RecentResult) Table() export.Table {
	rows := make([][]string, 0, len(r.Activities))
	for _, a := range r.Activities {
		rows = append(rows, []string{
			a.OccurredAt.UTC().Format(time.RFC3339),
			a.Type.String(),
			a.Action,
			a.Description,
			a.EntityID.String(),
		})
	}
	return export.Table{
		Preamble: [][]string{
			{"Recent Activity"},
			{"Page", fmt.Sprintf("%d of %d", r.Page, r.TotalPages)},
			{"Total", strconv.Itoa(r.Total)},
		},
		Sections: []export.Section{{
			Header: []string{"Date", "Type", "Action", "Description", "Entity ID"},
			Rows:   rows,
		}},
	}
}

// Report lists the page as checked lines; the feed carries no prices.
func (r *RecentResult) Report() export.Report {
	rep := export.Report{
		Title:       "Recent Activity",
		Description: fmt.Sprintf("Page %d of %d, %d activities", r.Page, r.TotalPages, r.Total),
		DoneHeading: "ACTIVITY:",
		Done:        make([]export.ReportLine, 0, len(r.Activities)),
	}
	for _, a := range r.Activities {
		at := a.OccurredAt
		rep.Done = append(rep.Done, export.ReportLine{Label: a.Description, Date: &at})
	}
	return rep
}
