package synclog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/yarnstash-backend/internal/adapter/postgres/synclog"
	"github.com/heartmarshall/yarnstash-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/yarnstash-backend/internal/domain"
)

func ptr[T any](v T) *T { return &v }

// ---------------------------------------------------------------------------
// Unit tests (pgxmock)
// ---------------------------------------------------------------------------

func TestRepo_Create_InsertsEntry(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	userID := uuid.New()
	mock.ExpectExec("INSERT INTO sync_log").
		WithArgs(
			pgxmock.AnyArg(), userID, "file_upload", "file", pgxmock.AnyArg(), "upload",
			pgxmock.AnyArg(), pgxmock.AnyArg(), "success", pgxmock.AnyArg(), pgxmock.AnyArg(),
			int64(42), pgxmock.AnyArg(),
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	e := &domain.SyncLogEntry{
		UserID:     userID,
		SyncType:   domain.SyncTypeFileUpload,
		EntityType: "file",
		Action:     "upload",
		Status:     domain.SyncStatusSuccess,
		DurationMs: 42,
	}
	require.NoError(t, synclog.New(mock).Create(context.Background(), e))

	assert.NotEqual(t, uuid.Nil, e.ID)
	assert.False(t, e.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_Create_CheckViolation(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("INSERT INTO sync_log").
		WillReturnError(&pgconn.PgError{Code: "23514"})

	err = synclog.New(mock).Create(context.Background(), &domain.SyncLogEntry{
		UserID: uuid.New(),
		Status: domain.SyncStatus("bogus"),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRepo_ListByUser_CountFails(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT COUNT").WillReturnError(errors.New("connection reset"))

	_, _, err = synclog.New(mock).ListByUser(context.Background(), uuid.New(), 10, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "count sync_log")
}

// ---------------------------------------------------------------------------
// Integration tests
// ---------------------------------------------------------------------------

func TestRepo_ListByUser_PagesNewestFirst(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := synclog.New(pool)
	ctx := context.Background()

	u := testhelper.SeedUser(t, pool)
	other := testhelper.SeedUser(t, pool)

	base := time.Now().UTC().Truncate(time.Microsecond)
	for i := range 3 {
		require.NoError(t, repo.Create(ctx, &domain.SyncLogEntry{
			UserID:           u.ID,
			SyncType:         domain.SyncTypeFullBackup,
			EntityType:       "backup",
			Action:           "create",
			ExternalObjectID: ptr("obj"),
			Status:           domain.SyncStatusSuccess,
			ByteSize:         ptr(int64(100 * (i + 1))),
			CreatedAt:        base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, repo.Create(ctx, &domain.SyncLogEntry{
		UserID:       other.ID,
		SyncType:     domain.SyncTypeFileDelete,
		EntityType:   "file",
		Action:       "delete",
		Status:       domain.SyncStatusError,
		ErrorMessage: ptr("not found"),
	}))

	page, total, err := repo.ListByUser(ctx, u.ID, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, page, 2)
	assert.Equal(t, int64(300), *page[0].ByteSize)
	assert.Equal(t, int64(200), *page[1].ByteSize)
	assert.Equal(t, domain.SyncStatusSuccess, page[0].Status)

	rest, _, err := repo.ListByUser(ctx, u.ID, 2, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, int64(100), *rest[0].ByteSize)
}
