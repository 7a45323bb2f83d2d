// Package pattern implements the pattern repository using PostgreSQL.
package pattern

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/yarnstash-backend/internal/adapter/postgres"
	"github.com/heartmarshall/yarnstash-backend/internal/domain"
)

// Repo provides pattern persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new pattern repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

var columns = []string{
	"p.id", "p.user_id", "p.designer_id", "p.title", "p.craft_type", "p.difficulty_level",
	"p.original_filename", "p.file_type", "p.drive_file_id", "p.drive_thumbnail_id",
	"p.file_size_bytes", "p.yardage_required", "p.price", "p.is_free", "p.personal_notes",
	"p.is_favorite", "p.created_at", "p.updated_at",
	"pd.name AS designer_name",
}

func selectPatterns(userID uuid.UUID) squirrel.SelectBuilder {
	return fromPatterns(userID, columns...)
}

func fromPatterns(userID uuid.UUID, cols ...string) squirrel.SelectBuilder {
	return postgres.Builder().
		Select(cols...).
		From("patterns p").
		LeftJoin("pattern_designers pd ON pd.id = p.designer_id").
		Where(squirrel.Eq{"p.user_id": userID})
}

func applyFilter(b squirrel.SelectBuilder, f domain.PatternFilter) squirrel.SelectBuilder {
	if f.Search != "" {
		like := "%" + f.Search + "%"
		b = b.Where(squirrel.Or{
			squirrel.ILike{"p.title": like},
			squirrel.ILike{"p.personal_notes": like},
			squirrel.ILike{"pd.name": like},
		})
	}
	if f.CraftType != "" {
		b = b.Where(squirrel.Eq{"p.craft_type": f.CraftType})
	}
	if f.Difficulty != nil {
		b = b.Where(squirrel.Eq{"p.difficulty_level": *f.Difficulty})
	}
	if f.IsFree != nil {
		b = b.Where(squirrel.Eq{"p.is_free": *f.IsFree})
	}
	return b
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a single pattern owned by the user.
func (r *Repo) GetByID(ctx context.Context, userID, patternID uuid.UUID) (*domain.Pattern, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var p domain.Pattern
	if err := postgres.GetOne(ctx, q, &p, selectPatterns(userID).Where(squirrel.Eq{"p.id": patternID})); err != nil {
		return nil, postgres.MapError(err, "pattern", patternID)
	}
	return &p, nil
}

// List returns one page of the user's patterns matching f, newest first,
// and the number of patterns matching f.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, f domain.PatternFilter) ([]domain.Pattern, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	total, err := postgres.Count(ctx, q, applyFilter(fromPatterns(userID, "COUNT(*)"), f))
	if err != nil {
		return nil, 0, fmt.Errorf("count patterns: %w", err)
	}

	rows, err := r.list(ctx, applyFilter(selectPatterns(userID), f).
		OrderBy("p.created_at DESC", "p.id DESC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)))
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// CountByUser counts every pattern the user owns.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := postgres.Count(ctx, q, postgres.Builder().
		Select("COUNT(*)").
		From("patterns").
		Where(squirrel.Eq{"user_id": userID}))
	if err != nil {
		return 0, fmt.Errorf("count patterns: %w", err)
	}
	return n, nil
}

// ListByUser returns every pattern owned by the user, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Pattern, error) {
	return r.list(ctx, selectPatterns(userID).OrderBy("p.created_at DESC", "p.id DESC"))
}

// ListByIDs returns the user's patterns among ids. Unknown ids are skipped.
func (r *Repo) ListByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.Pattern, error) {
	if len(ids) == 0 {
		return []domain.Pattern{}, nil
	}
	return r.list(ctx, selectPatterns(userID).
		Where(squirrel.Eq{"p.id": ids}).
		OrderBy("p.created_at DESC", "p.id DESC"))
}

// FindRecent returns up to limit most recently created patterns.
func (r *Repo) FindRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Pattern, error) {
	return r.list(ctx, selectPatterns(userID).
		OrderBy("p.created_at DESC", "p.id DESC").
		Limit(uint64(limit)))
}

// FindCreatedBetween returns patterns created in [start, end), newest first.
func (r *Repo) FindCreatedBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.Pattern, error) {
	return r.list(ctx, selectPatterns(userID).
		Where(squirrel.GtOrEq{"p.created_at": start}).
		Where(squirrel.Lt{"p.created_at": end}).
		OrderBy("p.created_at DESC", "p.id DESC"))
}

// CountSince counts patterns created at or after since.
func (r *Repo) CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := postgres.Count(ctx, q, postgres.Builder().
		Select("COUNT(*)").
		From("patterns").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"created_at": since}))
	if err != nil {
		return 0, fmt.Errorf("count patterns: %w", err)
	}
	return n, nil
}

func (r *Repo) list(ctx context.Context, b squirrel.SelectBuilder) ([]domain.Pattern, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows := []domain.Pattern{}
	if err := postgres.SelectAll(ctx, q, &rows, b); err != nil {
		return nil, fmt.Errorf("select patterns: %w", err)
	}
	return rows, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a pattern. ID and timestamps are filled in when zero.
func (r *Repo) Create(ctx context.Context, p *domain.Pattern) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	p.UpdatedAt = p.CreatedAt

	_, err := postgres.ExecBuilt(ctx, q, postgres.Builder().
		Insert("patterns").
		Columns("id", "user_id", "designer_id", "title", "craft_type", "difficulty_level",
			"original_filename", "file_type", "yardage_required", "price", "is_free",
			"personal_notes", "is_favorite", "created_at", "updated_at").
		Values(p.ID, p.UserID, p.DesignerID, p.Title, p.CraftType, p.DifficultyLevel,
			p.OriginalFilename, p.FileType, p.YardageRequired, p.Price, p.IsFree,
			p.PersonalNotes, p.IsFavorite, p.CreatedAt, p.UpdatedAt))
	if err != nil {
		return postgres.MapError(err, "pattern", p.ID)
	}
	return nil
}

// Update replaces the editable columns of a pattern owned by p.UserID. The
// stored file columns are left alone; SetDriveFile owns them.
func (r *Repo) Update(ctx context.Context, p *domain.Pattern) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p.UpdatedAt = time.Now().UTC()

	n, err := postgres.ExecBuilt(ctx, q, postgres.Builder().
		Update("patterns").
		SetMap(map[string]any{
			"designer_id":      p.DesignerID,
			"title":            p.Title,
			"craft_type":       p.CraftType,
			"difficulty_level": p.DifficultyLevel,
			"yardage_required": p.YardageRequired,
			"price":            p.Price,
			"is_free":          p.IsFree,
			"personal_notes":   p.PersonalNotes,
			"is_favorite":      p.IsFavorite,
			"updated_at":       p.UpdatedAt,
		}).
		Where(squirrel.Eq{"id": p.ID, "user_id": p.UserID}))
	if err != nil {
		return postgres.MapError(err, "pattern", p.ID)
	}
	if n == 0 {
		return fmt.Errorf("pattern %s: %w", p.ID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a pattern owned by the user. Projects keep their rows
// with pattern_id cleared.
func (r *Repo) Delete(ctx context.Context, userID, patternID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := postgres.ExecBuilt(ctx, q, postgres.Builder().
		Delete("patterns").
		Where(squirrel.Eq{"id": patternID, "user_id": userID}))
	if err != nil {
		return postgres.MapError(err, "pattern", patternID)
	}
	if n == 0 {
		return fmt.Errorf("pattern %s: %w", patternID, domain.ErrNotFound)
	}
	return nil
}

// SetDriveFile records where the pattern's file lives in the object store.
func (r *Repo) SetDriveFile(ctx context.Context, userID, patternID uuid.UUID, res domain.UploadResult) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := postgres.ExecBuilt(ctx, q, postgres.Builder().
		Update("patterns").
		Set("drive_file_id", res.ObjectID).
		Set("drive_thumbnail_id", res.ThumbnailID).
		Set("file_size_bytes", res.Size).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": patternID, "user_id": userID}))
	if err != nil {
		return postgres.MapError(err, "pattern", patternID)
	}
	if n == 0 {
		return fmt.Errorf("pattern %s: %w", patternID, domain.ErrNotFound)
	}
	return nil
}
