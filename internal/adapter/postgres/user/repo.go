// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	postgres "github.com/heartmarshall/yarnstash-backend/internal/adapter/postgres"
	"github.com/heartmarshall/yarnstash-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new user repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

var userColumns = []string{
	"id", "email", "name", "drive_access_token", "drive_refresh_token",
	"drive_token_expiry", "drive_root_folder_id", "created_at", "updated_at",
}

// ---------------------------------------------------------------------------
// User operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var row userRow
	err := postgres.GetOne(ctx, q, &row, postgres.Builder().
		Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"id": id}))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	u := toDomainUser(row)
	return &u, nil
}

// Create inserts a new user without Drive credentials.
func (r *Repo) Create(ctx context.Context, u *domain.User) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	now := time.Now().UTC()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = u.CreatedAt

	_, err := postgres.ExecBuilt(ctx, q, postgres.Builder().
		Insert("users").
		Columns("id", "email", "name", "created_at", "updated_at").
		Values(u.ID, u.Email, u.Name, u.CreatedAt, u.UpdatedAt))
	if err != nil {
		return postgres.MapError(err, "user", u.ID)
	}
	return nil
}

// ListDriveConnected returns the ids of users that hold Drive credentials.
func (r *Repo) ListDriveConnected(ctx context.Context) ([]uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	ids := []uuid.UUID{}
	err := postgres.SelectAll(ctx, q, &ids, postgres.Builder().
		Select("id").
		From("users").
		Where(squirrel.NotEq{"drive_access_token": nil}).
		OrderBy("created_at", "id"))
	if err != nil {
		return nil, fmt.Errorf("select drive users: %w", err)
	}
	return ids, nil
}

// ---------------------------------------------------------------------------
// Drive credentials
// ---------------------------------------------------------------------------

// SaveDriveCredentials stores the OAuth token pair for the user.
func (r *Repo) SaveDriveCredentials(ctx context.Context, userID uuid.UUID, creds domain.DriveCredentials) error {
	return r.update(ctx, userID, postgres.Builder().
		Update("users").
		Set("drive_access_token", creds.AccessToken).
		Set("drive_refresh_token", stringToPgText(creds.RefreshToken)).
		Set("drive_token_expiry", timeToPgTimestamptz(creds.Expiry)))
}

// ClearDriveCredentials removes the stored token pair and root folder.
func (r *Repo) ClearDriveCredentials(ctx context.Context, userID uuid.UUID) error {
	return r.update(ctx, userID, postgres.Builder().
		Update("users").
		Set("drive_access_token", nil).
		Set("drive_refresh_token", nil).
		Set("drive_token_expiry", nil).
		Set("drive_root_folder_id", nil))
}

// SetDriveRootFolder records the application folder id for the user.
func (r *Repo) SetDriveRootFolder(ctx context.Context, userID uuid.UUID, folderID string) error {
	return r.update(ctx, userID, postgres.Builder().
		Update("users").
		Set("drive_root_folder_id", folderID))
}

func (r *Repo) update(ctx context.Context, userID uuid.UUID, b squirrel.UpdateBuilder) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := postgres.ExecBuilt(ctx, q, b.
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": userID}))
	if err != nil {
		return postgres.MapError(err, "user", userID)
	}
	if n == 0 {
		return fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

// userRow mirrors the users table; the Drive columns are nullable.
type userRow struct {
	ID                uuid.UUID
	Email             string
	Name              string
	DriveAccessToken  pgtype.Text
	DriveRefreshToken pgtype.Text
	DriveTokenExpiry  pgtype.Timestamptz
	DriveRootFolderID pgtype.Text
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// toDomainUser converts a userRow into a domain.User.
func toDomainUser(row userRow) domain.User {
	u := domain.User{
		ID:                row.ID,
		Email:             row.Email,
		Name:              row.Name,
		DriveRootFolderID: pgTextToPtr(row.DriveRootFolderID),
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}
	if row.DriveAccessToken.Valid {
		u.Drive = &domain.DriveCredentials{
			AccessToken:  row.DriveAccessToken.String,
			RefreshToken: pgTextToString(row.DriveRefreshToken),
		}
		if row.DriveTokenExpiry.Valid {
			u.Drive.Expiry = row.DriveTokenExpiry.Time
		}
	}
	return u
}

// pgTextToString returns the string value or empty string if invalid (NULL).
func pgTextToString(t pgtype.Text) string {
	if t.Valid {
		return t.String
	}
	return ""
}

// pgTextToPtr returns a *string (nil when NULL).
func pgTextToPtr(t pgtype.Text) *string {
	if t.Valid {
		return &t.String
	}
	return nil
}

// stringToPgText maps an empty string to NULL.
func stringToPgText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

// timeToPgTimestamptz maps the zero time to NULL.
func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: !t.IsZero()}
}
