package rest

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
	"github.com/heartmarshall/yarnstash-backend/internal/service/inventory"
)

type projectRequest struct {
	PatternID            *uuid.UUID `json:"patternId"`
	Name                 string     `json:"name"`
	Status               string     `json:"status"`
	Priority             int        `json:"priority"`
	StartDate            *string    `json:"startDate"`
	TargetCompletionDate *string    `json:"targetCompletionDate"`
	CompletionDate       *string    `json:"completionDate"`
	SizeMaking           *string    `json:"sizeMaking"`
	Modifications        *string    `json:"modifications"`
	Recipient            *string    `json:"recipient"`
}

func (req projectRequest) input() (inventory.ProjectInput, error) {
	started, err := bodyDate(req.StartDate, "startDate")
	if err != nil {
		return inventory.ProjectInput{}, err
	}
	target, err := bodyDate(req.TargetCompletionDate, "targetCompletionDate")
	if err != nil {
		return inventory.ProjectInput{}, err
	}
	completed, err := bodyDate(req.CompletionDate, "completionDate")
	if err != nil {
		return inventory.ProjectInput{}, err
	}
	return inventory.ProjectInput{
		PatternID:            req.PatternID,
		Name:                 req.Name,
		Status:               domain.ProjectStatus(req.Status),
		Priority:             req.Priority,
		StartDate:            started,
		TargetCompletionDate: target,
		CompletionDate:       completed,
		SizeMaking:           req.SizeMaking,
		Modifications:        req.Modifications,
		Recipient:            req.Recipient,
	}, nil
}

type statusRequest struct {
	Status string `json:"status"`
}

type progressRequest struct {
	ProgressDate        *string  `json:"progressDate"`
	ProgressType        *string  `json:"progressType"`
	ProgressValue       *int     `json:"progressValue"`
	ProgressDescription *string  `json:"progressDescription"`
	HoursWorked         *float64 `json:"hoursWorked"`
	Notes               *string  `json:"notes"`
}

func (h *InventoryHandler) decodeProject(r *http.Request) (inventory.ProjectInput, error) {
	var req projectRequest
	if err := decodeJSON(r, &req); err != nil {
		return inventory.ProjectInput{}, err
	}
	return req.input()
}

// ListProjects handles GET /projects?page&limit&status&search.
func (h *InventoryHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	page, err := pageInput(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.svc.ListProjects(r.Context(), inventory.ProjectListInput{
		PageInput: page,
		Status:    domain.ProjectStatus(r.URL.Query().Get("status")),
		Search:    r.URL.Query().Get("search"),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// GetProject handles GET /projects/{id}. The response carries the
// project's progress entries.
func (h *InventoryHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	p, err := h.svc.GetProject(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// CreateProject handles POST /projects.
func (h *InventoryHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	input, err := h.decodeProject(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	p, err := h.svc.CreateProject(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// UpdateProject handles PUT /projects/{id}.
func (h *InventoryHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	input, err := h.decodeProject(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	p, err := h.svc.UpdateProject(r.Context(), id, input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// UpdateProjectStatus handles PATCH /projects/{id}/status.
func (h *InventoryHandler) UpdateProjectStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	p, err := h.svc.UpdateProjectStatus(r.Context(), id, inventory.StatusInput{Status: domain.ProjectStatus(req.Status)})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// DeleteProject handles DELETE /projects/{id}.
func (h *InventoryHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteProject(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddProgress handles POST /projects/{id}/progress.
func (h *InventoryHandler) AddProgress(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var req progressRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	date, err := bodyDate(req.ProgressDate, "progressDate")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	entry, err := h.svc.AddProgress(r.Context(), id, inventory.ProgressInput{
		ProgressDate:        date,
		ProgressType:        req.ProgressType,
		ProgressValue:       req.ProgressValue,
		ProgressDescription: req.ProgressDescription,
		HoursWorked:         req.HoursWorked,
		Notes:               req.Notes,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

// ListProgress handles GET /projects/{id}/progress.
func (h *InventoryHandler) ListProgress(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	entries, err := h.svc.ListProgress(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if entries == nil {
		entries = []domain.ProjectProgress{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"progress": entries})
}
