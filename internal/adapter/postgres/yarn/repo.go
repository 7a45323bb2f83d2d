// Package yarn implements the yarn inventory repository using PostgreSQL.
package yarn

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/yarnstash-backend/internal/adapter/postgres"
	"github.com/heartmarshall/yarnstash-backend/internal/domain"
)

// Repo provides yarn inventory persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new yarn inventory repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

var columns = []string{
	"yi.id", "yi.user_id", "yi.yarn_line_id", "yi.colorway", "yi.color_family", "yi.dye_lot",
	"yi.skeins_total", "yi.skeins_remaining", "yi.total_yardage", "yi.remaining_yardage",
	"yi.purchase_date", "yi.purchase_price", "yi.vendor", "yi.storage_location",
	"yi.condition", "yi.notes", "yi.is_favorite", "yi.created_at", "yi.updated_at",
	"yb.name AS brand_name", "yl.name AS line_name",
}

// selectStock joins the yarn line and brand so display names come back with the row.
func selectStock(userID uuid.UUID) squirrel.SelectBuilder {
	return fromStock(userID, columns...)
}

func fromStock(userID uuid.UUID, cols ...string) squirrel.SelectBuilder {
	return postgres.Builder().
		Select(cols...).
		From("yarn_inventory yi").
		LeftJoin("yarn_lines yl ON yl.id = yi.yarn_line_id").
		LeftJoin("yarn_brands yb ON yb.id = yl.brand_id").
		Where(squirrel.Eq{"yi.user_id": userID})
}

func applyFilter(b squirrel.SelectBuilder, f domain.YarnFilter) squirrel.SelectBuilder {
	if f.Search != "" {
		like := "%" + f.Search + "%"
		b = b.Where(squirrel.Or{
			squirrel.ILike{"yi.colorway": like},
			squirrel.ILike{"yi.notes": like},
			squirrel.ILike{"yi.storage_location": like},
		})
	}
	if f.ColorFamily != "" {
		b = b.Where(squirrel.Eq{"yi.color_family": f.ColorFamily})
	}
	if f.WeightCategory != "" {
		b = b.Where(squirrel.Eq{"yl.weight_category": f.WeightCategory})
	}
	if f.BrandID != nil {
		b = b.Where(squirrel.Eq{"yb.id": *f.BrandID})
	}
	return b
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a single yarn row owned by the user.
func (r *Repo) GetByID(ctx context.Context, userID, yarnID uuid.UUID) (*domain.YarnStock, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var y domain.YarnStock
	if err := postgres.GetOne(ctx, q, &y, selectStock(userID).Where(squirrel.Eq{"yi.id": yarnID})); err != nil {
		return nil, postgres.MapError(err, "yarn", yarnID)
	}
	return &y, nil
}

// List returns one page of the user's yarn matching f, newest first, and
// the number of rows matching f.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, f domain.YarnFilter) ([]domain.YarnStock, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	total, err := postgres.Count(ctx, q, applyFilter(fromStock(userID, "COUNT(*)"), f))
	if err != nil {
		return nil, 0, fmt.Errorf("count yarn_inventory: %w", err)
	}

	rows, err := r.list(ctx, applyFilter(selectStock(userID), f).
		OrderBy("yi.created_at DESC", "yi.id DESC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)))
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// ListByUser returns every yarn row owned by the user, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.YarnStock, error) {
	return r.list(ctx, selectStock(userID).OrderBy("yi.created_at DESC", "yi.id DESC"))
}

// FindRecent returns up to limit most recently created yarn rows.
func (r *Repo) FindRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.YarnStock, error) {
	return r.list(ctx, selectStock(userID).
		OrderBy("yi.created_at DESC", "yi.id DESC").
		Limit(uint64(limit)))
}

// FindCreatedBetween returns yarn rows created in [start, end), newest first.
func (r *Repo) FindCreatedBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.YarnStock, error) {
	return r.list(ctx, selectStock(userID).
		Where(squirrel.GtOrEq{"yi.created_at": start}).
		Where(squirrel.Lt{"yi.created_at": end}).
		OrderBy("yi.created_at DESC", "yi.id DESC"))
}

// CountSince counts yarn rows created at or after since.
func (r *Repo) CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := postgres.Count(ctx, q, postgres.Builder().
		Select("COUNT(*)").
		From("yarn_inventory").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"created_at": since}))
	if err != nil {
		return 0, fmt.Errorf("count yarn_inventory: %w", err)
	}
	return n, nil
}

func (r *Repo) list(ctx context.Context, b squirrel.SelectBuilder) ([]domain.YarnStock, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows := []domain.YarnStock{}
	if err := postgres.SelectAll(ctx, q, &rows, b); err != nil {
		return nil, fmt.Errorf("select yarn_inventory: %w", err)
	}
	return rows, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a yarn inventory row. ID and timestamps are filled in when zero.
func (r *Repo) Create(ctx context.Context, y *domain.YarnStock) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if y.ID == uuid.Nil {
		y.ID = uuid.New()
	}
	if y.CreatedAt.IsZero() {
		y.CreatedAt = time.Now().UTC()
	}
	y.UpdatedAt = y.CreatedAt
	if y.Condition == "" {
		y.Condition = "excellent"
	}

	_, err := postgres.ExecBuilt(ctx, q, postgres.Builder().
		Insert("yarn_inventory").
		Columns("id", "user_id", "yarn_line_id", "colorway", "color_family", "dye_lot",
			"skeins_total", "skeins_remaining", "total_yardage", "remaining_yardage",
			"purchase_date", "purchase_price", "vendor", "storage_location", "condition",
			"notes", "is_favorite", "created_at", "updated_at").
		Values(y.ID, y.UserID, y.YarnLineID, y.Colorway, y.ColorFamily, y.DyeLot,
			y.SkeinsTotal, y.SkeinsRemaining, y.TotalYardage, y.RemainingYardage,
			y.PurchaseDate, y.PurchasePrice, y.Vendor, y.StorageLocation, y.Condition,
			y.Notes, y.IsFavorite, y.CreatedAt, y.UpdatedAt))
	if err != nil {
		return postgres.MapError(err, "yarn_inventory", y.ID)
	}
	return nil
}

// Update replaces the editable columns of a yarn row owned by y.UserID.
func (r *Repo) Update(ctx context.Context, y *domain.YarnStock) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	y.UpdatedAt = time.Now().UTC()
	if y.Condition == "" {
		y.Condition = "excellent"
	}

	n, err := postgres.ExecBuilt(ctx, q, postgres.Builder().
		Update("yarn_inventory").
		SetMap(map[string]any{
			"yarn_line_id":      y.YarnLineID,
			"colorway":          y.Colorway,
			"color_family":      y.ColorFamily,
			"dye_lot":           y.DyeLot,
			"skeins_total":      y.SkeinsTotal,
			"skeins_remaining":  y.SkeinsRemaining,
			"total_yardage":     y.TotalYardage,
			"remaining_yardage": y.RemainingYardage,
			"purchase_date":     y.PurchaseDate,
			"purchase_price":    y.PurchasePrice,
			"vendor":            y.Vendor,
			"storage_location":  y.StorageLocation,
			"condition":         y.Condition,
			"notes":             y.Notes,
			"is_favorite":       y.IsFavorite,
			"updated_at":        y.UpdatedAt,
		}).
		Where(squirrel.Eq{"id": y.ID, "user_id": y.UserID}))
	if err != nil {
		return postgres.MapError(err, "yarn", y.ID)
	}
	if n == 0 {
		return fmt.Errorf("yarn %s: %w", y.ID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a yarn row owned by the user. Project usage rows cascade.
func (r *Repo) Delete(ctx context.Context, userID, yarnID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := postgres.ExecBuilt(ctx, q, postgres.Builder().
		Delete("yarn_inventory").
		Where(squirrel.Eq{"id": yarnID, "user_id": userID}))
	if err != nil {
		return postgres.MapError(err, "yarn", yarnID)
	}
	if n == 0 {
		return fmt.Errorf("yarn %s: %w", yarnID, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Aggregates
// ---------------------------------------------------------------------------

// Totals sums the user's whole inventory. Value is purchase_price times
// skeins_total.
func (r *Repo) Totals(ctx context.Context, userID uuid.UUID) (domain.YarnTotals, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var t domain.YarnTotals
	err := postgres.GetOne(ctx, q, &t, postgres.Builder().
		Select(
			"COUNT(*) AS count",
			"COALESCE(SUM(purchase_price * skeins_total), 0)::float8 AS value",
			"COALESCE(SUM(total_yardage), 0)::int8 AS total_yardage",
			"COALESCE(SUM(remaining_yardage), 0)::int8 AS remaining_yardage",
			"COALESCE(SUM(skeins_total), 0)::float8 AS total_skeins",
			"COALESCE(SUM(skeins_remaining), 0)::float8 AS remaining_skeins",
		).
		From("yarn_inventory").
		Where(squirrel.Eq{"user_id": userID}))
	if err != nil {
		return domain.YarnTotals{}, fmt.Errorf("sum yarn_inventory: %w", err)
	}
	return t, nil
}

// CountByWeight groups the user's yarn by the weight category of its line,
// largest group first.
func (r *Repo) CountByWeight(ctx context.Context, userID uuid.UUID) ([]domain.WeightCount, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows := []domain.WeightCount{}
	err := postgres.SelectAll(ctx, q, &rows, fromStock(userID, "yl.weight_category", "COUNT(*) AS count").
		GroupBy("yl.weight_category").
		OrderBy("count DESC", "yl.weight_category"))
	if err != nil {
		return nil, fmt.Errorf("group yarn_inventory by weight: %w", err)
	}
	return rows, nil
}

// CountByColor groups the user's yarn by color family with the remaining
// yardage of each group, largest group first.
func (r *Repo) CountByColor(ctx context.Context, userID uuid.UUID) ([]domain.ColorCount, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows := []domain.ColorCount{}
	err := postgres.SelectAll(ctx, q, &rows, postgres.Builder().
		Select("color_family", "COUNT(*) AS count",
			"COALESCE(SUM(remaining_yardage), 0)::int8 AS total_yardage").
		From("yarn_inventory").
		Where(squirrel.Eq{"user_id": userID}).
		GroupBy("color_family").
		OrderBy("count DESC", "color_family"))
	if err != nil {
		return nil, fmt.Errorf("group yarn_inventory by color: %w", err)
	}
	return rows, nil
}
