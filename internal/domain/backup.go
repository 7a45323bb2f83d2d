package domain

import (
	"time"

	"github.com/google/uuid"
)

// Snapshot is the full backup document of one user's data. BackupDate is
// the moment assembly started; the reads behind it are not isolated, so the
// snapshot is only approximately as of that instant.
type Snapshot struct {
	BackupDate time.Time        `json:"backupDate"`
	UserID     uuid.UUID        `json:"userId"`
	Entities   SnapshotEntities `json:"entities"`
}

// SnapshotEntities groups the snapshot rows by entity family.
type SnapshotEntities struct {
	YarnInventory []YarnStock `json:"yarnInventory"`
	Patterns      []Pattern   `json:"patterns"`
	Projects      []Project   `json:"projects"`
}

// RetentionResult reports a backup cleanup run. Deleted counts objects that
// are gone afterwards; objects that could not be removed are listed in Failed.
type RetentionResult struct {
	Kept    int            `json:"kept"`
	Deleted int            `json:"deletedCount"`
	Failed  []BatchFailure `json:"failed,omitempty"`
}

// PatternBackupResult reports a batch pattern upload.
type PatternBackupResult struct {
	Uploaded []PatternUpload `json:"results"`
	Failed   []BatchFailure  `json:"failures,omitempty"`
}

// PatternUpload is one successfully stored pattern file.
type PatternUpload struct {
	PatternID uuid.UUID `json:"patternId"`
	UploadResult
}
