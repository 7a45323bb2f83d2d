package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated application user.
type User struct {
	ID                uuid.UUID
	Email             string
	Name              string
	Drive             *DriveCredentials
	DriveRootFolderID *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// DriveConnected reports whether the user has stored Drive credentials.
func (u *User) DriveConnected() bool {
	return u.Drive != nil && u.Drive.AccessToken != ""
}

// DriveCredentials is the per-user OAuth token pair for the object store.
// It is treated as opaque outside the drive adapter and must never be logged.
type DriveCredentials struct {
	AccessToken  string
	RefreshToken string
	Expiry       time.Time
}

// String hides the token values from fmt and slog output.
func (c DriveCredentials) String() string { return "DriveCredentials{redacted}" }
