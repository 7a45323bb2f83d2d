// Package synclog implements the append-only sync audit log using PostgreSQL.
package synclog

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/yarnstash-backend/internal/adapter/postgres"
	"github.com/heartmarshall/yarnstash-backend/internal/domain"
)

// Repo provides sync log persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new sync log repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

// Create appends an entry. ID and CreatedAt are filled in when zero.
func (r *Repo) Create(ctx context.Context, e *domain.SyncLogEntry) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	_, err := postgres.ExecBuilt(ctx, q, postgres.Builder().
		Insert("sync_log").
		Columns("id", "user_id", "sync_type", "entity_type", "entity_id", "action",
			"external_object_id", "path", "status", "error_message", "byte_size",
			"duration_ms", "created_at").
		Values(e.ID, e.UserID, string(e.SyncType), e.EntityType, e.EntityID, e.Action,
			e.ExternalObjectID, e.Path, string(e.Status), e.ErrorMessage, e.ByteSize,
			e.DurationMs, e.CreatedAt))
	if err != nil {
		return postgres.MapError(err, "sync_log", e.ID)
	}
	return nil
}

// ListByUser returns one page of the user's entries, newest first, and the
// total number of entries.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.SyncLogEntry, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	total, err := postgres.Count(ctx, q, postgres.Builder().
		Select("COUNT(*)").
		From("sync_log").
		Where(squirrel.Eq{"user_id": userID}))
	if err != nil {
		return nil, 0, fmt.Errorf("count sync_log: %w", err)
	}

	entries := []domain.SyncLogEntry{}
	err = postgres.SelectAll(ctx, q, &entries, postgres.Builder().
		Select("id", "user_id", "sync_type", "entity_type", "entity_id", "action",
			"external_object_id", "path", "status", "error_message", "byte_size",
			"duration_ms", "created_at").
		From("sync_log").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)))
	if err != nil {
		return nil, 0, fmt.Errorf("select sync_log: %w", err)
	}
	return entries, total, nil
}
