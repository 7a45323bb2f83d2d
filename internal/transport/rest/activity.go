package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
	"github.com/heartmarshall/yarnstash-backend/internal/export"
	"github.com/heartmarshall/yarnstash-backend/internal/service/activity"
)

type activityService interface {
	GetRecentActivity(ctx context.Context, input activity.RecentInput) (*activity.RecentResult, error)
	GetSummary(ctx context.Context, input activity.SummaryInput) (*domain.ActivitySummary, error)
	GetCalendar(ctx context.Context, input activity.CalendarInput) (*domain.ActivityCalendar, error)
	ExportLog(ctx context.Context, input activity.ExportInput) (export.Output, error)
}

// ActivityHandler serves /activity endpoints.
type ActivityHandler struct {
	svc activityService
	log *slog.Logger
	now func() time.Time
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(svc activityService, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{svc: svc, log: logger.With("handler", "activity"), now: time.Now}
}

// Recent handles GET /activity/recent?limit&page&type&format.
// type is a comma separated list; "all" or nothing selects every family.
// Without format the page is returned as JSON; with one it is rendered
// and returned as a download.
func (h *ActivityHandler) Recent(w http.ResponseWriter, r *http.Request) {
	var (
		kind export.Kind
		err  error
	)
	if raw := r.URL.Query().Get("format"); raw != "" {
		if kind, err = export.ParseKind(raw, export.KindJSON); err != nil {
			handleError(w, r, h.log, err)
			return
		}
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	page, err := queryInt(r, "page", 1)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.svc.GetRecentActivity(r.Context(), activity.RecentInput{
		Limit: limit,
		Page:  page,
		Types: parseTypes(r.URL.Query().Get("type")),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if kind == "" {
		writeJSON(w, http.StatusOK, result)
		return
	}

	out, err := export.Format(result, kind)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	filename := fmt.Sprintf("activity-recent-%s.%s", h.now().UTC().Format("2006-01-02"), kind.Ext())
	writeAttachment(w, out, filename)
}

// Summary handles GET /activity/summary?period.
func (h *ActivityHandler) Summary(w http.ResponseWriter, r *http.Request) {
	period := domain.SummaryPeriod(strings.ToLower(r.URL.Query().Get("period")))
	result, err := h.svc.GetSummary(r.Context(), activity.SummaryInput{Period: period})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Calendar handles GET /activity/calendar?year&month. Missing values
// default to the current UTC month.
func (h *ActivityHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	now := h.now().UTC()
	year, err := queryInt(r, "year", now.Year())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	month, err := queryInt(r, "month", int(now.Month()))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.svc.GetCalendar(r.Context(), activity.CalendarInput{Year: year, Month: month})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Export handles GET /activity/export?startDate&endDate&format and
// returns the log as a download.
func (h *ActivityHandler) Export(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	kind, err := export.ParseKind(q.Get("format"), export.KindJSON)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	start, err := queryDate(q.Get("startDate"), "startDate")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	end, err := queryDate(q.Get("endDate"), "endDate")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out, err := h.svc.ExportLog(r.Context(), activity.ExportInput{StartDate: start, EndDate: end, Format: kind})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	filename := fmt.Sprintf("activity-log-%s.%s", h.now().UTC().Format("2006-01-02"), kind.Ext())
	writeAttachment(w, out, filename)
}

func parseTypes(raw string) []domain.ActivityType {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "all") {
		return nil
	}
	var types []domain.ActivityType
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			types = append(types, domain.ActivityType(strings.ToLower(part)))
		}
	}
	return types
}

// queryDate accepts a calendar date or a full RFC 3339 timestamp.
func queryDate(raw, field string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, domain.NewValidationError(field, "must be a date (YYYY-MM-DD) or RFC 3339 timestamp")
}

func writeAttachment(w http.ResponseWriter, out export.Output, filename string) {
	w.Header().Set("Content-Type", out.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(out.Body) //nolint:errcheck
}
