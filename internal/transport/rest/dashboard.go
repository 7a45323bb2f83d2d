package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
	"github.com/heartmarshall/yarnstash-backend/internal/service/dashboard"
)

type dashboardService interface {
	GetStats(ctx context.Context) (*domain.DashboardStats, error)
	GetRecentProjects(ctx context.Context, input dashboard.RecentProjectsInput) ([]domain.ProjectWithProgress, error)
	GetYarnUsage(ctx context.Context) (*domain.YarnUsage, error)
	GetUpcomingDeadlines(ctx context.Context, input dashboard.DeadlinesInput) ([]domain.Project, error)
	GetCompletionRate(ctx context.Context, input dashboard.CompletionRateInput) (*domain.CompletionRate, error)
}

// DashboardHandler serves /dashboard endpoints.
type DashboardHandler struct {
	svc dashboardService
	log *slog.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc dashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, log: logger.With("handler", "dashboard")}
}

// Stats handles GET /dashboard/stats.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetStats(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// RecentProjects handles GET /dashboard/recent-projects?limit.
func (h *DashboardHandler) RecentProjects(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	projects, err := h.svc.GetRecentProjects(r.Context(), dashboard.RecentProjectsInput{Limit: limit})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"projects": projects})
}

// YarnUsage handles GET /dashboard/yarn-usage.
func (h *DashboardHandler) YarnUsage(w http.ResponseWriter, r *http.Request) {
	usage, err := h.svc.GetYarnUsage(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, usage)
}

// UpcomingDeadlines handles GET /dashboard/upcoming-deadlines?days.
func (h *DashboardHandler) UpcomingDeadlines(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days", 0)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	projects, err := h.svc.GetUpcomingDeadlines(r.Context(), dashboard.DeadlinesInput{Days: days})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"projects": projects})
}

// CompletionRate handles GET /dashboard/completion-rate?period.
func (h *DashboardHandler) CompletionRate(w http.ResponseWriter, r *http.Request) {
	period := domain.CompletionPeriod(r.URL.Query().Get("period"))

	rate, err := h.svc.GetCompletionRate(r.Context(), dashboard.CompletionRateInput{Period: period})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, rate)
}
