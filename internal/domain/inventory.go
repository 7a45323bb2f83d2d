package domain

import (
	"time"

	"github.com/google/uuid"
)

// YarnStock is one yarn inventory row. BrandName and LineName are filled
// from the yarn line join and stay nil when the row has no line.
type YarnStock struct {
	ID               uuid.UUID  `json:"id"`
	UserID           uuid.UUID  `json:"userId"`
	YarnLineID       *uuid.UUID `json:"yarnLineId"`
	Colorway         *string    `json:"colorway"`
	ColorFamily      *string    `json:"colorFamily"`
	DyeLot           *string    `json:"dyeLot"`
	SkeinsTotal      int        `json:"skeinsTotal"`
	SkeinsRemaining  float64    `json:"skeinsRemaining"`
	TotalYardage     *int       `json:"totalYardage"`
	RemainingYardage *int       `json:"remainingYardage"`
	PurchaseDate     *time.Time `json:"purchaseDate"`
	PurchasePrice    *float64   `json:"purchasePrice"`
	Vendor           *string    `json:"vendor"`
	StorageLocation  *string    `json:"storageLocation"`
	Condition        string     `json:"condition"`
	Notes            *string    `json:"notes"`
	IsFavorite       bool       `json:"isFavorite"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`

	BrandName *string `json:"brandName"`
	LineName  *string `json:"lineName"`
}

// Pattern is a knitting/crochet pattern owned by a user.
type Pattern struct {
	ID               uuid.UUID  `json:"id"`
	UserID           uuid.UUID  `json:"userId"`
	DesignerID       *uuid.UUID `json:"designerId"`
	Title            string     `json:"title"`
	CraftType        *string    `json:"craftType"`
	DifficultyLevel  *int       `json:"difficultyLevel"`
	OriginalFilename *string    `json:"originalFilename"`
	FileType         *string    `json:"fileType"`
	DriveFileID      *string    `json:"driveFileId"`
	DriveThumbnailID *string    `json:"driveThumbnailId"`
	FileSizeBytes    *int64     `json:"fileSizeBytes"`
	YardageRequired  *int       `json:"yardageRequired"`
	Price            *float64   `json:"price"`
	IsFree           bool       `json:"isFree"`
	PersonalNotes    *string    `json:"personalNotes"`
	IsFavorite       bool       `json:"isFavorite"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`

	DesignerName *string `json:"designerName"`
}

// Project is a piece of work, optionally following a pattern and
// consuming yarn from the user's inventory.
type Project struct {
	ID                   uuid.UUID     `json:"id"`
	UserID               uuid.UUID     `json:"userId"`
	PatternID            *uuid.UUID    `json:"patternId"`
	Name                 string        `json:"name" db:"project_name"`
	Status               ProjectStatus `json:"status"`
	Priority             int           `json:"priority"`
	StartDate            *time.Time    `json:"startDate"`
	TargetCompletionDate *time.Time    `json:"targetCompletionDate"`
	CompletionDate       *time.Time    `json:"completionDate"`
	TotalHoursWorked     *float64      `json:"totalHoursWorked"`
	SizeMaking           *string       `json:"sizeMaking"`
	Modifications        *string       `json:"modifications"`
	Recipient            *string       `json:"recipient"`
	CreatedAt            time.Time     `json:"createdAt"`
	UpdatedAt            time.Time     `json:"updatedAt"`

	PatternTitle *string `json:"patternTitle"`

	YarnUsage []ProjectYarnUsage `json:"yarnUsage,omitempty" db:"-"`
	Progress  []ProjectProgress  `json:"progress,omitempty" db:"-"`
}

// IsCompleted reports whether the project has been finished.
func (p *Project) IsCompleted() bool {
	return p.Status == ProjectStatusCompleted
}

// ProjectYarnUsage links a project to a yarn inventory row.
type ProjectYarnUsage struct {
	ID              uuid.UUID `json:"id"`
	ProjectID       uuid.UUID `json:"projectId"`
	YarnInventoryID uuid.UUID `json:"yarnInventoryId"`
	SkeinsUsed      *float64  `json:"skeinsUsed"`
	YardageUsed     *int      `json:"yardageUsed"`
	UsageNotes      *string   `json:"usageNotes"`
	AddedAt         time.Time `json:"addedAt"`
}

// ProjectProgress is one progress entry logged against a project.
type ProjectProgress struct {
	ID                  uuid.UUID `json:"id"`
	ProjectID           uuid.UUID `json:"projectId"`
	ProgressDate        time.Time `json:"progressDate"`
	ProgressType        *string   `json:"progressType"`
	ProgressValue       *int      `json:"progressValue"`
	ProgressDescription *string   `json:"progressDescription"`
	HoursWorked         *float64  `json:"hoursWorked"`
	Notes               *string   `json:"notes"`
	CreatedAt           time.Time `json:"createdAt"`

	ProjectName string `json:"projectName"`
}

// YarnFilter narrows a yarn inventory listing. Empty fields match everything.
type YarnFilter struct {
	Search         string
	ColorFamily    string
	WeightCategory string
	BrandID        *uuid.UUID
	Limit          int
	Offset         int
}

// PatternFilter narrows a pattern listing.
type PatternFilter struct {
	Search     string
	CraftType  string
	Difficulty *int
	IsFree     *bool
	Limit      int
	Offset     int
}

// ProjectFilter narrows a project listing.
type ProjectFilter struct {
	Status ProjectStatus
	Search string
	Limit  int
	Offset int
}
