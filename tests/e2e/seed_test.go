//go:build e2e

package e2e_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/yarnstash-backend/internal/adapter/postgres/pattern"
	"github.com/heartmarshall/yarnstash-backend/internal/adapter/postgres/project"
	"github.com/heartmarshall/yarnstash-backend/internal/adapter/postgres/yarn"
	"github.com/heartmarshall/yarnstash-backend/internal/domain"
)

func ptr[T any](v T) *T { return &v }

// seedInventory inserts one yarn, pattern, project and progress row for
// userID, each a minute apart and all within the last hour.
func seedInventory(t *testing.T, ts *testServer, userID uuid.UUID) {
	t.Helper()
	ctx := context.Background()
	base := time.Now().UTC().Add(-30 * time.Minute).Truncate(time.Second)

	require.NoError(t, yarn.New(ts.Pool).Create(ctx, &domain.YarnStock{
		UserID:          userID,
		Colorway:        ptr("Heather Grey"),
		SkeinsTotal:     3,
		SkeinsRemaining: 3,
		CreatedAt:       base,
	}))

	pat := &domain.Pattern{
		UserID:    userID,
		Title:     "Cozy Sweater",
		CraftType: ptr("knitting"),
		CreatedAt: base.Add(time.Minute),
	}
	require.NoError(t, pattern.New(ts.Pool).Create(ctx, pat))

	proj := &domain.Project{
		UserID:    userID,
		PatternID: &pat.ID,
		Name:      "Cozy Sweater for Sam",
		Status:    domain.ProjectStatusActive,
		StartDate: ptr(base.Add(2 * time.Minute)),
		CreatedAt: base.Add(2 * time.Minute),
	}
	require.NoError(t, project.New(ts.Pool).Create(ctx, proj))

	_, err := ts.Pool.Exec(ctx,
		`INSERT INTO project_progress (id, project_id, progress_date, progress_type, progress_value, created_at)
		 VALUES ($1, $2, $3, 'rows_completed', 24, $3)`,
		uuid.New(), proj.ID, base.Add(3*time.Minute))
	require.NoError(t, err)
}
