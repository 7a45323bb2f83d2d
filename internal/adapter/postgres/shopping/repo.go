// Package shopping implements the shopping list repository using PostgreSQL.
package shopping

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/yarnstash-backend/internal/adapter/postgres"
	"github.com/heartmarshall/yarnstash-backend/internal/domain"
)

// Repo provides shopping list persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new shopping list repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

var listColumns = []string{
	"id", "user_id", "name", "description", "is_active", "created_at", "updated_at",
}

var itemColumns = []string{
	"i.id", "i.shopping_list_id", "i.item_type", "i.yarn_line_id", "i.pattern_id",
	"i.item_name", "i.colorway", "i.quantity", "i.estimated_price", "i.vendor", "i.url",
	"i.priority", "i.purchased", "i.purchase_date", "i.actual_price", "i.notes", "i.created_at",
	"yb.name AS brand_name", "yl.name AS line_name", "yl.yardage_per_skein",
	"p.title AS pattern_title",
}

func selectItems() squirrel.SelectBuilder {
	return postgres.Builder().
		Select(itemColumns...).
		From("shopping_list_items i").
		LeftJoin("yarn_lines yl ON yl.id = i.yarn_line_id").
		LeftJoin("yarn_brands yb ON yb.id = yl.brand_id").
		LeftJoin("patterns p ON p.id = i.pattern_id")
}

// ---------------------------------------------------------------------------
// Lists
// ---------------------------------------------------------------------------

// ListLists returns the user's lists, the active one first. Items are not loaded.
func (r *Repo) ListLists(ctx context.Context, userID uuid.UUID) ([]domain.ShoppingList, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	lists := []domain.ShoppingList{}
	err := postgres.SelectAll(ctx, q, &lists, postgres.Builder().
		Select(listColumns...).
		From("shopping_lists").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("is_active DESC", "created_at DESC", "id DESC"))
	if err != nil {
		return nil, fmt.Errorf("select shopping_lists: %w", err)
	}
	return lists, nil
}

// GetList returns one list owned by the user. Items are not loaded.
func (r *Repo) GetList(ctx context.Context, userID, listID uuid.UUID) (*domain.ShoppingList, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var l domain.ShoppingList
	err := postgres.GetOne(ctx, q, &l, postgres.Builder().
		Select(listColumns...).
		From("shopping_lists").
		Where(squirrel.Eq{"id": listID, "user_id": userID}))
	if err != nil {
		return nil, postgres.MapError(err, "shopping_list", listID)
	}
	return &l, nil
}

// CreateList inserts a list. ID and timestamps are filled in when zero.
func (r *Repo) CreateList(ctx context.Context, l *domain.ShoppingList) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	l.UpdatedAt = l.CreatedAt

	_, err := postgres.ExecBuilt(ctx, q, postgres.Builder().
		Insert("shopping_lists").
		Columns("id", "user_id", "name", "description", "is_active", "created_at", "updated_at").
		Values(l.ID, l.UserID, l.Name, l.Description, l.IsActive, l.CreatedAt, l.UpdatedAt))
	if err != nil {
		return postgres.MapError(err, "shopping_list", l.ID)
	}
	return nil
}

// FindActiveList returns the user's active list, or domain.ErrNotFound.
func (r *Repo) FindActiveList(ctx context.Context, userID uuid.UUID) (*domain.ShoppingList, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var l domain.ShoppingList
	err := postgres.GetOne(ctx, q, &l, postgres.Builder().
		Select(listColumns...).
		From("shopping_lists").
		Where(squirrel.Eq{"user_id": userID, "is_active": true}).
		OrderBy("updated_at DESC", "id DESC").
		Limit(1))
	if err != nil {
		return nil, postgres.MapError(err, "active shopping_list of user", userID)
	}
	return &l, nil
}

// UpdateList replaces a list's name, description and active flag.
func (r *Repo) UpdateList(ctx context.Context, l *domain.ShoppingList) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	l.UpdatedAt = time.Now().UTC()

	n, err := postgres.ExecBuilt(ctx, q, postgres.Builder().
		Update("shopping_lists").
		Set("name", l.Name).
		Set("description", l.Description).
		Set("is_active", l.IsActive).
		Set("updated_at", l.UpdatedAt).
		Where(squirrel.Eq{"id": l.ID, "user_id": l.UserID}))
	if err != nil {
		return postgres.MapError(err, "shopping_list", l.ID)
	}
	if n == 0 {
		return fmt.Errorf("shopping_list %s: %w", l.ID, domain.ErrNotFound)
	}
	return nil
}

// DeleteList removes a list owned by the user together with its items.
func (r *Repo) DeleteList(ctx context.Context, userID, listID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := postgres.ExecBuilt(ctx, q, postgres.Builder().
		Delete("shopping_lists").
		Where(squirrel.Eq{"id": listID, "user_id": userID}))
	if err != nil {
		return postgres.MapError(err, "shopping_list", listID)
	}
	if n == 0 {
		return fmt.Errorf("shopping_list %s: %w", listID, domain.ErrNotFound)
	}
	return nil
}

// DeactivateOthers clears the active flag on every list of the user except keepID.
func (r *Repo) DeactivateOthers(ctx context.Context, userID, keepID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := postgres.ExecBuilt(ctx, q, postgres.Builder().
		Update("shopping_lists").
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"user_id": userID, "is_active": true}).
		Where(squirrel.NotEq{"id": keepID}))
	if err != nil {
		return fmt.Errorf("deactivate shopping_lists: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Items
// ---------------------------------------------------------------------------

// ListItems returns the items of a list, highest priority first.
func (r *Repo) ListItems(ctx context.Context, listID uuid.UUID) ([]domain.ShoppingListItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	items := []domain.ShoppingListItem{}
	err := postgres.SelectAll(ctx, q, &items, selectItems().
		Where(squirrel.Eq{"i.shopping_list_id": listID}).
		OrderBy("i.purchased", "i.priority DESC", "i.created_at", "i.id"))
	if err != nil {
		return nil, fmt.Errorf("select shopping_list_items: %w", err)
	}
	return items, nil
}

// GetItem returns one item of a list.
func (r *Repo) GetItem(ctx context.Context, listID, itemID uuid.UUID) (*domain.ShoppingListItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var item domain.ShoppingListItem
	err := postgres.GetOne(ctx, q, &item, selectItems().
		Where(squirrel.Eq{"i.id": itemID, "i.shopping_list_id": listID}))
	if err != nil {
		return nil, postgres.MapError(err, "shopping_list_item", itemID)
	}
	return &item, nil
}

// FindPendingYarnItem returns the unpurchased item of the list for the same
// yarn line and colorway, or domain.ErrNotFound.
func (r *Repo) FindPendingYarnItem(ctx context.Context, listID, yarnLineID uuid.UUID, colorway *string) (*domain.ShoppingListItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := selectItems().
		Where(squirrel.Eq{
			"i.shopping_list_id": listID,
			"i.yarn_line_id":     yarnLineID,
			"i.purchased":        false,
		}).
		OrderBy("i.created_at", "i.id").
		Limit(1)
	// squirrel renders Eq{col: nil} as IS NULL.
	if colorway == nil {
		b = b.Where(squirrel.Eq{"i.colorway": nil})
	} else {
		b = b.Where(squirrel.Eq{"i.colorway": *colorway})
	}

	var item domain.ShoppingListItem
	if err := postgres.GetOne(ctx, q, &item, b); err != nil {
		return nil, postgres.MapError(err, "shopping_list_item", yarnLineID)
	}
	return &item, nil
}

// CreateItem inserts an item. ID and CreatedAt are filled in when zero.
func (r *Repo) CreateItem(ctx context.Context, item *domain.ShoppingListItem) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}

	_, err := postgres.ExecBuilt(ctx, q, postgres.Builder().
		Insert("shopping_list_items").
		Columns("id", "shopping_list_id", "item_type", "yarn_line_id", "pattern_id",
			"item_name", "colorway", "quantity", "estimated_price", "vendor", "url",
			"priority", "notes", "created_at").
		Values(item.ID, item.ShoppingListID, string(item.ItemType), item.YarnLineID, item.PatternID,
			item.ItemName, item.Colorway, item.Quantity, item.EstimatedPrice, item.Vendor, item.URL,
			item.Priority, item.Notes, item.CreatedAt))
	if err != nil {
		return postgres.MapError(err, "shopping_list_item", item.ID)
	}
	return nil
}

// AddQuantity increases an item's quantity by delta.
func (r *Repo) AddQuantity(ctx context.Context, itemID uuid.UUID, delta int) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := postgres.ExecBuilt(ctx, q, postgres.Builder().
		Update("shopping_list_items").
		Set("quantity", squirrel.Expr("quantity + ?", delta)).
		Where(squirrel.Eq{"id": itemID}))
	if err != nil {
		return postgres.MapError(err, "shopping_list_item", itemID)
	}
	if n == 0 {
		return fmt.Errorf("shopping_list_item %s: %w", itemID, domain.ErrNotFound)
	}
	return nil
}

// MarkPurchased flags the item as bought.
func (r *Repo) MarkPurchased(ctx context.Context, itemID uuid.UUID, at time.Time, actualPrice *float64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := postgres.ExecBuilt(ctx, q, postgres.Builder().
		Update("shopping_list_items").
		Set("purchased", true).
		Set("purchase_date", at).
		Set("actual_price", actualPrice).
		Where(squirrel.Eq{"id": itemID}))
	if err != nil {
		return postgres.MapError(err, "shopping_list_item", itemID)
	}
	if n == 0 {
		return fmt.Errorf("shopping_list_item %s: %w", itemID, domain.ErrNotFound)
	}
	return nil
}

// UpdateItem replaces the editable fields of an item. The references,
// item type and purchase state are left alone.
func (r *Repo) UpdateItem(ctx context.Context, item *domain.ShoppingListItem) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := postgres.ExecBuilt(ctx, q, postgres.Builder().
		Update("shopping_list_items").
		SetMap(map[string]any{
			"item_name":       item.ItemName,
			"colorway":        item.Colorway,
			"quantity":        item.Quantity,
			"estimated_price": item.EstimatedPrice,
			"vendor":          item.Vendor,
			"url":             item.URL,
			"priority":        item.Priority,
			"notes":           item.Notes,
		}).
		Where(squirrel.Eq{"id": item.ID, "shopping_list_id": item.ShoppingListID}))
	if err != nil {
		return postgres.MapError(err, "shopping_list_item", item.ID)
	}
	if n == 0 {
		return fmt.Errorf("shopping_list_item %s: %w", item.ID, domain.ErrNotFound)
	}
	return nil
}

// DeleteItem removes an item from a list.
func (r *Repo) DeleteItem(ctx context.Context, listID, itemID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := postgres.ExecBuilt(ctx, q, postgres.Builder().
		Delete("shopping_list_items").
		Where(squirrel.Eq{"id": itemID, "shopping_list_id": listID}))
	if err != nil {
		return postgres.MapError(err, "shopping_list_item", itemID)
	}
	if n == 0 {
		return fmt.Errorf("shopping_list_item %s: %w", itemID, domain.ErrNotFound)
	}
	return nil
}
