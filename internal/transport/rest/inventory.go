package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
	"github.com/heartmarshall/yarnstash-backend/internal/service/inventory"
)

type inventoryService interface {
	ListYarn(ctx context.Context, input inventory.YarnListInput) (*inventory.Page[domain.YarnStock], error)
	GetYarn(ctx context.Context, yarnID uuid.UUID) (*domain.YarnStock, error)
	CreateYarn(ctx context.Context, input inventory.YarnInput) (*domain.YarnStock, error)
	UpdateYarn(ctx context.Context, yarnID uuid.UUID, input inventory.YarnInput) (*domain.YarnStock, error)
	DeleteYarn(ctx context.Context, yarnID uuid.UUID) error

	ListPatterns(ctx context.Context, input inventory.PatternListInput) (*inventory.Page[domain.Pattern], error)
	GetPattern(ctx context.Context, patternID uuid.UUID) (*domain.Pattern, error)
	CreatePattern(ctx context.Context, input inventory.PatternInput) (*domain.Pattern, error)
	UpdatePattern(ctx context.Context, patternID uuid.UUID, input inventory.PatternInput) (*domain.Pattern, error)
	DeletePattern(ctx context.Context, patternID uuid.UUID) error

	ListProjects(ctx context.Context, input inventory.ProjectListInput) (*inventory.Page[domain.Project], error)
	GetProject(ctx context.Context, projectID uuid.UUID) (*domain.Project, error)
	CreateProject(ctx context.Context, input inventory.ProjectInput) (*domain.Project, error)
	UpdateProject(ctx context.Context, projectID uuid.UUID, input inventory.ProjectInput) (*domain.Project, error)
	UpdateProjectStatus(ctx context.Context, projectID uuid.UUID, input inventory.StatusInput) (*domain.Project, error)
	DeleteProject(ctx context.Context, projectID uuid.UUID) error
	AddProgress(ctx context.Context, projectID uuid.UUID, input inventory.ProgressInput) (*domain.ProjectProgress, error)
	ListProgress(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectProgress, error)
}

// InventoryHandler serves the /yarn, /patterns and /projects endpoints.
type InventoryHandler struct {
	svc inventoryService
	log *slog.Logger
}

// NewInventoryHandler creates an InventoryHandler.
func NewInventoryHandler(svc inventoryService, logger *slog.Logger) *InventoryHandler {
	return &InventoryHandler{svc: svc, log: logger.With("handler", "inventory")}
}

func (h *InventoryHandler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return uuid.Nil, false
	}
	return id, true
}

func pageInput(r *http.Request) (inventory.PageInput, error) {
	page, err := queryInt(r, "page", 1)
	if err != nil {
		return inventory.PageInput{}, err
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		return inventory.PageInput{}, err
	}
	return inventory.PageInput{Page: page, Limit: limit}, nil
}

// bodyDate parses an optional date field of a request body.
func bodyDate(v *string, field string) (*time.Time, error) {
	if v == nil {
		return nil, nil
	}
	return queryDate(*v, field)
}

// ---------------------------------------------------------------------------
// Yarn
// ---------------------------------------------------------------------------

type yarnRequest struct {
	YarnLineID       *uuid.UUID `json:"yarnLineId"`
	Colorway         *string    `json:"colorway"`
	ColorFamily      *string    `json:"colorFamily"`
	DyeLot           *string    `json:"dyeLot"`
	SkeinsTotal      int        `json:"skeinsTotal"`
	SkeinsRemaining  *float64   `json:"skeinsRemaining"`
	TotalYardage     *int       `json:"totalYardage"`
	RemainingYardage *int       `json:"remainingYardage"`
	PurchaseDate     *string    `json:"purchaseDate"`
	PurchasePrice    *float64   `json:"purchasePrice"`
	Vendor           *string    `json:"vendor"`
	StorageLocation  *string    `json:"storageLocation"`
	Condition        string     `json:"condition"`
	Notes            *string    `json:"notes"`
	IsFavorite       bool       `json:"isFavorite"`
}

func (req yarnRequest) input() (inventory.YarnInput, error) {
	purchased, err := bodyDate(req.PurchaseDate, "purchaseDate")
	if err != nil {
		return inventory.YarnInput{}, err
	}
	return inventory.YarnInput{
		YarnLineID:       req.YarnLineID,
		Colorway:         req.Colorway,
		ColorFamily:      req.ColorFamily,
		DyeLot:           req.DyeLot,
		SkeinsTotal:      req.SkeinsTotal,
		SkeinsRemaining:  req.SkeinsRemaining,
		TotalYardage:     req.TotalYardage,
		RemainingYardage: req.RemainingYardage,
		PurchaseDate:     purchased,
		PurchasePrice:    req.PurchasePrice,
		Vendor:           req.Vendor,
		StorageLocation:  req.StorageLocation,
		Condition:        req.Condition,
		Notes:            req.Notes,
		IsFavorite:       req.IsFavorite,
	}, nil
}

func (h *InventoryHandler) decodeYarn(r *http.Request) (inventory.YarnInput, error) {
	var req yarnRequest
	if err := decodeJSON(r, &req); err != nil {
		return inventory.YarnInput{}, err
	}
	return req.input()
}

// ListYarn handles GET /yarn?page&limit&search&colorFamily&weightCategory&brandId.
func (h *InventoryHandler) ListYarn(w http.ResponseWriter, r *http.Request) {
	page, err := pageInput(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	q := r.URL.Query()
	input := inventory.YarnListInput{
		PageInput:      page,
		Search:         q.Get("search"),
		ColorFamily:    q.Get("colorFamily"),
		WeightCategory: q.Get("weightCategory"),
	}
	if raw := q.Get("brandId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			handleError(w, r, h.log, domain.NewValidationError("brandId", "must be a UUID"))
			return
		}
		input.BrandID = &id
	}

	res, err := h.svc.ListYarn(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// GetYarn handles GET /yarn/{id}.
func (h *InventoryHandler) GetYarn(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	y, err := h.svc.GetYarn(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, y)
}

// CreateYarn handles POST /yarn.
func (h *InventoryHandler) CreateYarn(w http.ResponseWriter, r *http.Request) {
	input, err := h.decodeYarn(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	y, err := h.svc.CreateYarn(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, y)
}

// UpdateYarn handles PUT /yarn/{id}.
func (h *InventoryHandler) UpdateYarn(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	input, err := h.decodeYarn(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	y, err := h.svc.UpdateYarn(r.Context(), id, input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, y)
}

// DeleteYarn handles DELETE /yarn/{id}.
func (h *InventoryHandler) DeleteYarn(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteYarn(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// Patterns
// ---------------------------------------------------------------------------

type patternRequest struct {
	DesignerID       *uuid.UUID `json:"designerId"`
	Title            string     `json:"title"`
	CraftType        *string    `json:"craftType"`
	DifficultyLevel  *int       `json:"difficultyLevel"`
	OriginalFilename *string    `json:"originalFilename"`
	FileType         *string    `json:"fileType"`
	YardageRequired  *int       `json:"yardageRequired"`
	Price            *float64   `json:"price"`
	IsFree           bool       `json:"isFree"`
	PersonalNotes    *string    `json:"personalNotes"`
	IsFavorite       bool       `json:"isFavorite"`
}

func (h *InventoryHandler) decodePattern(r *http.Request) (inventory.PatternInput, error) {
	var req patternRequest
	if err := decodeJSON(r, &req); err != nil {
		return inventory.PatternInput{}, err
	}
	return inventory.PatternInput(req), nil
}

// ListPatterns handles GET /patterns?page&limit&search&craftType&difficulty&isFree.
func (h *InventoryHandler) ListPatterns(w http.ResponseWriter, r *http.Request) {
	page, err := pageInput(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	input := inventory.PatternListInput{
		PageInput: page,
		Search:    r.URL.Query().Get("search"),
		CraftType: r.URL.Query().Get("craftType"),
	}
	if r.URL.Query().Has("difficulty") {
		d, err := queryInt(r, "difficulty", 0)
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		input.Difficulty = &d
	}
	if input.IsFree, err = queryBool(r, "isFree"); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.svc.ListPatterns(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// GetPattern handles GET /patterns/{id}.
func (h *InventoryHandler) GetPattern(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	p, err := h.svc.GetPattern(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// CreatePattern handles POST /patterns.
func (h *InventoryHandler) CreatePattern(w http.ResponseWriter, r *http.Request) {
	input, err := h.decodePattern(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	p, err := h.svc.CreatePattern(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// UpdatePattern handles PUT /patterns/{id}.
func (h *InventoryHandler) UpdatePattern(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	input, err := h.decodePattern(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	p, err := h.svc.UpdatePattern(r.Context(), id, input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// DeletePattern handles DELETE /patterns/{id}.
func (h *InventoryHandler) DeletePattern(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeletePattern(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
