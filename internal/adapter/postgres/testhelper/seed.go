package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// now returns the current time truncated to Postgres precision.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedUser creates a user without Drive credentials.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	ts := now()
	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + suffix + "@example.com",
		Name:      "Test User " + suffix,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, user.Name, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedYarnLine creates a brand and one line of that brand. Returns the line ID.
func SeedYarnLine(t *testing.T, pool *pgxpool.Pool, brand, line string) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	brandID := uuid.New()
	lineID := uuid.New()

	if _, err := pool.Exec(ctx,
		`INSERT INTO yarn_brands (id, name) VALUES ($1, $2)`, brandID, brand,
	); err != nil {
		t.Fatalf("testhelper: SeedYarnLine insert brand: %v", err)
	}
	if _, err := pool.Exec(ctx,
		`INSERT INTO yarn_lines (id, brand_id, name, yardage_per_skein) VALUES ($1, $2, $3, 210)`,
		lineID, brandID, line,
	); err != nil {
		t.Fatalf("testhelper: SeedYarnLine insert line: %v", err)
	}

	return lineID
}

// SeedYarn creates a yarn inventory row with the given creation time.
func SeedYarn(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, lineID *uuid.UUID, colorway string, createdAt time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO yarn_inventory (id, user_id, yarn_line_id, colorway, skeins_total, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, 2, $5, $5)`,
		id, userID, lineID, colorway, createdAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedYarn: %v", err)
	}
	return id
}

// SeedPattern creates a pattern with the given title and creation time.
func SeedPattern(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, title string, createdAt time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO patterns (id, user_id, title, craft_type, created_at, updated_at)
		 VALUES ($1, $2, $3, 'knitting', $4, $4)`,
		id, userID, title, createdAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPattern: %v", err)
	}
	return id
}

// SeedProject creates a project. completedAt non-nil marks it completed.
func SeedProject(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, patternID *uuid.UUID, name string, createdAt time.Time, completedAt *time.Time) uuid.UUID {
	t.Helper()

	status := domain.ProjectStatusActive
	if completedAt != nil {
		status = domain.ProjectStatusCompleted
	}

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO projects (id, user_id, pattern_id, project_name, status, completion_date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`,
		id, userID, patternID, name, string(status), completedAt, createdAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProject: %v", err)
	}
	return id
}

// SeedProgress logs a progress entry on a project.
func SeedProgress(t *testing.T, pool *pgxpool.Pool, projectID uuid.UUID, at time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO project_progress (id, project_id, progress_date, progress_type, progress_value, created_at)
		 VALUES ($1, $2, $3, 'rows_completed', 10, $3)`,
		id, projectID, at,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProgress: %v", err)
	}
	return id
}

// SeedYarnUsage links a yarn inventory row to a project.
func SeedYarnUsage(t *testing.T, pool *pgxpool.Pool, projectID, yarnID uuid.UUID) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO project_yarn_usage (id, project_id, yarn_inventory_id, skeins_used)
		 VALUES ($1, $2, $3, 1.5)`,
		id, projectID, yarnID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedYarnUsage: %v", err)
	}
	return id
}
