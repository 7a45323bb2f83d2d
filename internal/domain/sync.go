package domain

import (
	"time"

	"github.com/google/uuid"
)

// SyncLogEntry is an append-only audit record of one object store operation.
type SyncLogEntry struct {
	ID               uuid.UUID  `json:"id"`
	UserID           uuid.UUID  `json:"userId"`
	SyncType         SyncType   `json:"syncType"`
	EntityType       string     `json:"entityType"`
	EntityID         *uuid.UUID `json:"entityId,omitempty"`
	Action           string     `json:"action"`
	ExternalObjectID *string    `json:"externalObjectId,omitempty"`
	Path             *string    `json:"path,omitempty"`
	Status           SyncStatus `json:"status"`
	ErrorMessage     *string    `json:"errorMessage,omitempty"`
	ByteSize         *int64     `json:"byteSize,omitempty"`
	DurationMs       int64      `json:"durationMs"`
	CreatedAt        time.Time  `json:"createdAt"`
}

// UploadRequest describes one object to put into the store.
type UploadRequest struct {
	Content  []byte
	Name     string
	MimeType string
	FolderID string
}

// UploadResult is what the store reports back after an upload.
type UploadResult struct {
	ObjectID     string  `json:"fileId"`
	ThumbnailID  *string `json:"thumbnailId,omitempty"`
	Name         string  `json:"filename"`
	Size         int64   `json:"size"`
	ViewURL      *string `json:"webViewLink,omitempty"`
	ThumbnailURL *string `json:"thumbnailLink,omitempty"`
}

// ObjectMetadata describes an object listed from a folder.
type ObjectMetadata struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	MimeType     string    `json:"mimeType"`
	Size         int64     `json:"size"`
	CreatedTime  time.Time `json:"createdTime"`
	ModifiedTime time.Time `json:"modifiedTime"`
	ThumbnailURL *string   `json:"thumbnailLink,omitempty"`
}

// StorageQuota is the user's object store usage in bytes. Limit is zero
// for accounts without a limit.
type StorageQuota struct {
	Limit             int64 `json:"limit"`
	Usage             int64 `json:"usage"`
	UsageInDrive      int64 `json:"usageInDrive"`
	UsageInDriveTrash int64 `json:"usageInDriveTrash"`
}
