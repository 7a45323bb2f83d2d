package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
	"github.com/heartmarshall/yarnstash-backend/internal/export"
	"github.com/heartmarshall/yarnstash-backend/internal/service/shopping"
)

type shoppingService interface {
	ListLists(ctx context.Context) ([]domain.ShoppingList, error)
	GetList(ctx context.Context, listID uuid.UUID) (*shopping.ListWithTotals, error)
	CreateList(ctx context.Context, input shopping.CreateListInput) (*domain.ShoppingList, error)
	GetActiveList(ctx context.Context) (*shopping.ListWithTotals, error)
	UpdateList(ctx context.Context, listID uuid.UUID, input shopping.UpdateListInput) (*domain.ShoppingList, error)
	DeleteList(ctx context.Context, listID uuid.UUID) error
	AddItem(ctx context.Context, listID uuid.UUID, input shopping.AddItemInput) (*domain.ShoppingListItem, error)
	UpdateItem(ctx context.Context, listID, itemID uuid.UUID, input shopping.UpdateItemInput) (*domain.ShoppingListItem, error)
	RemoveItem(ctx context.Context, listID, itemID uuid.UUID) error
	MarkPurchased(ctx context.Context, listID, itemID uuid.UUID, input shopping.MarkPurchasedInput) (*domain.ShoppingListItem, error)
	Export(ctx context.Context, listID uuid.UUID, kind export.Kind) (export.Output, string, error)
}

// ShoppingHandler serves /shopping-lists endpoints.
type ShoppingHandler struct {
	svc shoppingService
	log *slog.Logger
}

// NewShoppingHandler creates a ShoppingHandler.
func NewShoppingHandler(svc shoppingService, logger *slog.Logger) *ShoppingHandler {
	return &ShoppingHandler{svc: svc, log: logger.With("handler", "shopping")}
}

type createListRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	IsActive    bool    `json:"isActive"`
}

type updateListRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

type updateItemRequest struct {
	ItemName       *string  `json:"itemName"`
	Colorway       *string  `json:"colorway"`
	Quantity       *int     `json:"quantity"`
	EstimatedPrice *float64 `json:"estimatedPrice"`
	Vendor         *string  `json:"vendor"`
	URL            *string  `json:"url"`
	Priority       *int     `json:"priority"`
	Notes          *string  `json:"notes"`
}

type addItemRequest struct {
	ItemType       string     `json:"itemType"`
	YarnLineID     *uuid.UUID `json:"yarnLineId"`
	PatternID      *uuid.UUID `json:"patternId"`
	ItemName       *string    `json:"itemName"`
	Colorway       *string    `json:"colorway"`
	Quantity       int        `json:"quantity"`
	EstimatedPrice *float64   `json:"estimatedPrice"`
	Vendor         *string    `json:"vendor"`
	URL            *string    `json:"url"`
	Priority       int        `json:"priority"`
	Notes          *string    `json:"notes"`
}

type purchaseRequest struct {
	ActualPrice    *float64 `json:"actualPrice"`
	AddToInventory bool     `json:"addToInventory"`
}

// List handles GET /shopping-lists.
func (h *ShoppingHandler) List(w http.ResponseWriter, r *http.Request) {
	lists, err := h.svc.ListLists(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"lists": lists})
}

// Get handles GET /shopping-lists/{id}.
func (h *ShoppingHandler) Get(w http.ResponseWriter, r *http.Request) {
	listID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	list, err := h.svc.GetList(r.Context(), listID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Create handles POST /shopping-lists.
func (h *ShoppingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createListRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	list, err := h.svc.CreateList(r.Context(), shopping.CreateListInput{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, list)
}

// Active handles GET /shopping-lists/active.
func (h *ShoppingHandler) Active(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.GetActiveList(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Update handles PUT /shopping-lists/{id}.
func (h *ShoppingHandler) Update(w http.ResponseWriter, r *http.Request) {
	listID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	var req updateListRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	list, err := h.svc.UpdateList(r.Context(), listID, shopping.UpdateListInput{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Delete handles DELETE /shopping-lists/{id}.
func (h *ShoppingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	listID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteList(r.Context(), listID); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddItem handles POST /shopping-lists/{id}/items.
func (h *ShoppingHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	listID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	var req addItemRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	item, err := h.svc.AddItem(r.Context(), listID, shopping.AddItemInput{
		ItemType:       domain.ShoppingItemType(req.ItemType),
		YarnLineID:     req.YarnLineID,
		PatternID:      req.PatternID,
		ItemName:       req.ItemName,
		Colorway:       req.Colorway,
		Quantity:       req.Quantity,
		EstimatedPrice: req.EstimatedPrice,
		Vendor:         req.Vendor,
		URL:            req.URL,
		Priority:       req.Priority,
		Notes:          req.Notes,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// UpdateItem handles PUT /shopping-lists/{id}/items/{itemId}.
func (h *ShoppingHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	listID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	itemID, ok := h.pathID(w, r, "itemId")
	if !ok {
		return
	}
	var req updateItemRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	item, err := h.svc.UpdateItem(r.Context(), listID, itemID, shopping.UpdateItemInput(req))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// RemoveItem handles DELETE /shopping-lists/{id}/items/{itemId}.
func (h *ShoppingHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	listID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	itemID, ok := h.pathID(w, r, "itemId")
	if !ok {
		return
	}
	if err := h.svc.RemoveItem(r.Context(), listID, itemID); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Purchase handles POST /shopping-lists/{id}/items/{itemId}/purchase.
// An empty body marks the item bought at its estimated price.
func (h *ShoppingHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	listID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	itemID, ok := h.pathID(w, r, "itemId")
	if !ok {
		return
	}

	var req purchaseRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(r, &req); err != nil {
			handleError(w, r, h.log, err)
			return
		}
	}

	item, err := h.svc.MarkPurchased(r.Context(), listID, itemID, shopping.MarkPurchasedInput{
		ActualPrice:    req.ActualPrice,
		AddToInventory: req.AddToInventory,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Export handles GET /shopping-lists/{id}/export?format.
func (h *ShoppingHandler) Export(w http.ResponseWriter, r *http.Request) {
	listID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	kind, err := export.ParseKind(r.URL.Query().Get("format"), export.KindText)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out, filename, err := h.svc.Export(r.Context(), listID, kind)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeAttachment(w, out, filename)
}

func (h *ShoppingHandler) pathID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := pathUUID(r, name)
	if err != nil {
		handleError(w, r, h.log, err)
		return uuid.Nil, false
	}
	return id, true
}
