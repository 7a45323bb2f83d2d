package activity

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
	"github.com/heartmarshall/yarnstash-backend/internal/export"
	"github.com/heartmarshall/yarnstash-backend/pkg/ctxutil"
)

const exportDateLayout = "2006-01-02"

// ActivityLog is the exported activity document.
type ActivityLog struct {
	ExportDate time.Time       `json:"exportDate"`
	User       string          `json:"user"`
	Period     LogPeriod       `json:"period"`
	Activities LogActivities   `json:"activities"`
	Summary    LogSummaryTotal `json:"summary"`
}

type LogPeriod struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type LogActivities struct {
	Yarn     []LogYarn    `json:"yarn"`
	Patterns []LogPattern `json:"patterns"`
	Projects []LogProject `json:"projects"`
}

type LogYarn struct {
	Date     string `json:"date"`
	Brand    string `json:"brand"`
	Line     string `json:"line"`
	Colorway string `json:"colorway"`
	Skeins   int    `json:"skeins"`
	Yardage  *int   `json:"yardage"`
}

type LogPattern struct {
	Date       string `json:"date"`
	Title      string `json:"title"`
	Designer   string `json:"designer"`
	CraftType  string `json:"craftType"`
	Difficulty *int   `json:"difficulty"`
}

type LogProject struct {
	Date           string `json:"date"`
	Name           string `json:"name"`
	Pattern        string `json:"pattern"`
	Status         string `json:"status"`
	StartDate      string `json:"startDate"`
	CompletionDate string `json:"completionDate"`
}

type LogSummaryTotal struct {
	TotalYarnAdded         int `json:"totalYarnAdded"`
	TotalPatternsAdded     int `json:"totalPatternsAdded"`
	TotalProjectsStarted   int `json:"totalProjectsStarted"`
	TotalProjectsCompleted int `json:"totalProjectsCompleted"`
}

// Table renders the log as three CSV sections after a short preamble.
func (l *ActivityLog) Table() export.Table {
	t := export.Table{
		Preamble: [][]string{
			{"Activity Log Export"},
			{"Export Date: " + l.ExportDate.UTC().Format(time.RFC3339)},
			{"User: " + l.User},
		},
	}

	yarn := export.Section{
		Title:  "YARN INVENTORY",
		Header: []string{"Date", "Brand", "Line", "Colorway", "Skeins", "Yardage"},
		Rows:   [][]string{},
	}
	for _, y := range l.Activities.Yarn {
		yarn.Rows = append(yarn.Rows, []string{y.Date, y.Brand, y.Line, y.Colorway, strconv.Itoa(y.Skeins), optInt(y.Yardage)})
	}

	patterns := export.Section{
		Title:  "PATTERNS",
		Header: []string{"Date", "Title", "Designer", "Craft Type", "Difficulty"},
		Rows:   [][]string{},
	}
	for _, p := range l.Activities.Patterns {
		patterns.Rows = append(patterns.Rows, []string{p.Date, p.Title, p.Designer, p.CraftType, optInt(p.Difficulty)})
	}

	projects := export.Section{
		Title:  "PROJECTS",
		Header: []string{"Date", "Name", "Pattern", "Status", "Start Date", "Completion Date"},
		Rows:   [][]string{},
	}
	for _, p := range l.Activities.Projects {
		projects.Rows = append(projects.Rows, []string{p.Date, p.Name, p.Pattern, p.Status, p.StartDate, p.CompletionDate})
	}

	t.Sections = []export.Section{yarn, patterns, projects}
	return t
}

// ExportLog renders the user's yarn, pattern and project history, either
// all of it or the rows created in [StartDate, EndDate).
func (s *Service) ExportLog(ctx context.Context, input ExportInput) (export.Output, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return export.Output{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return export.Output{}, err
	}

	format := input.Format
	if format == "" {
		format = export.KindJSON
	}
	ranged := input.StartDate != nil

	var (
		user     *domain.User
		yarn     []domain.YarnStock
		patterns []domain.Pattern
		projects []domain.Project
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		user, err = s.users.GetByID(gctx, userID)
		return wrap("get user", err)
	})
	g.Go(func() (err error) {
		if ranged {
			yarn, err = s.yarn.FindCreatedBetween(gctx, userID, *input.StartDate, *input.EndDate)
		} else {
			yarn, err = s.yarn.ListByUser(gctx, userID)
		}
		return wrap("export yarn", err)
	})
	g.Go(func() (err error) {
		if ranged {
			patterns, err = s.patterns.FindCreatedBetween(gctx, userID, *input.StartDate, *input.EndDate)
		} else {
			patterns, err = s.patterns.ListByUser(gctx, userID)
		}
		return wrap("export patterns", err)
	})
	g.Go(func() (err error) {
		if ranged {
			projects, err = s.projects.FindCreatedBetween(gctx, userID, *input.StartDate, *input.EndDate)
		} else {
			projects, err = s.projects.ListByUser(gctx, userID)
		}
		return wrap("export projects", err)
	})
	if err := g.Wait(); err != nil {
		return export.Output{}, err
	}

	doc := buildLog(s.now().UTC(), user.Email, input, yarn, patterns, projects)

	out, err := export.Format(doc, format)
	if err != nil {
		return export.Output{}, err
	}

	s.log.InfoContext(ctx, "activity log exported",
		slog.String("user_id", userID.String()),
		slog.String("format", format.String()),
		slog.Int("bytes", len(out.Body)),
	)

	return out, nil
}

func buildLog(
	now time.Time,
	email string,
	input ExportInput,
	yarn []domain.YarnStock,
	patterns []domain.Pattern,
	projects []domain.Project,
) *ActivityLog {
	doc := &ActivityLog{
		ExportDate: now,
		User:       email,
		Period:     LogPeriod{Start: "beginning", End: "present"},
		Activities: LogActivities{
			Yarn:     make([]LogYarn, 0, len(yarn)),
			Patterns: make([]LogPattern, 0, len(patterns)),
			Projects: make([]LogProject, 0, len(projects)),
		},
	}
	if input.StartDate != nil {
		doc.Period.Start = input.StartDate.UTC().Format(exportDateLayout)
	}
	if input.EndDate != nil {
		doc.Period.End = input.EndDate.UTC().Format(exportDateLayout)
	}

	for _, y := range yarn {
		doc.Activities.Yarn = append(doc.Activities.Yarn, LogYarn{
			Date:     y.CreatedAt.UTC().Format(exportDateLayout),
			Brand:    deref(y.BrandName),
			Line:     deref(y.LineName),
			Colorway: deref(y.Colorway),
			Skeins:   y.SkeinsTotal,
			Yardage:  y.TotalYardage,
		})
	}

	for _, p := range patterns {
		doc.Activities.Patterns = append(doc.Activities.Patterns, LogPattern{
			Date:       p.CreatedAt.UTC().Format(exportDateLayout),
			Title:      p.Title,
			Designer:   deref(p.DesignerName),
			CraftType:  deref(p.CraftType),
			Difficulty: p.DifficultyLevel,
		})
	}

	completed := 0
	for i := range projects {
		p := &projects[i]
		if p.IsCompleted() {
			completed++
		}
		doc.Activities.Projects = append(doc.Activities.Projects, LogProject{
			Date:           p.CreatedAt.UTC().Format(exportDateLayout),
			Name:           p.Name,
			Pattern:        deref(p.PatternTitle),
			Status:         p.Status.String(),
			StartDate:      optDate(p.StartDate),
			CompletionDate: optDate(p.CompletionDate),
		})
	}

	doc.Summary = LogSummaryTotal{
		TotalYarnAdded:         len(yarn),
		TotalPatternsAdded:     len(patterns),
		TotalProjectsStarted:   len(projects),
		TotalProjectsCompleted: completed,
	}
	return doc
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func optDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(exportDateLayout)
}
