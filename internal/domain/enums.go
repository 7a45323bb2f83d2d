package domain

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectStatusQueued      ProjectStatus = "queued"
	ProjectStatusActive      ProjectStatus = "active"
	ProjectStatusCompleted   ProjectStatus = "completed"
	ProjectStatusFrogged     ProjectStatus = "frogged"
	ProjectStatusHibernating ProjectStatus = "hibernating"
)

func (s ProjectStatus) String() string { return string(s) }

func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusQueued, ProjectStatusActive, ProjectStatusCompleted,
		ProjectStatusFrogged, ProjectStatusHibernating:
		return true
	}
	return false
}

// ActivityType tags an activity record with the entity family it came from.
type ActivityType string

const (
	ActivityTypeYarn     ActivityType = "yarn"
	ActivityTypePattern  ActivityType = "pattern"
	ActivityTypeProject  ActivityType = "project"
	ActivityTypeProgress ActivityType = "progress"
)

// AllActivityTypes lists every activity type in merge order.
var AllActivityTypes = []ActivityType{
	ActivityTypeYarn,
	ActivityTypePattern,
	ActivityTypeProject,
	ActivityTypeProgress,
}

func (t ActivityType) String() string { return string(t) }

func (t ActivityType) IsValid() bool {
	switch t {
	case ActivityTypeYarn, ActivityTypePattern, ActivityTypeProject, ActivityTypeProgress:
		return true
	}
	return false
}

// SummaryPeriod is the trailing window used by the activity summary.
type SummaryPeriod string

const (
	SummaryPeriodDay   SummaryPeriod = "day"
	SummaryPeriodWeek  SummaryPeriod = "week"
	SummaryPeriodMonth SummaryPeriod = "month"
	SummaryPeriodYear  SummaryPeriod = "year"
)

func (p SummaryPeriod) String() string { return string(p) }

func (p SummaryPeriod) IsValid() bool {
	switch p {
	case SummaryPeriodDay, SummaryPeriodWeek, SummaryPeriodMonth, SummaryPeriodYear:
		return true
	}
	return false
}

// SyncType classifies a sync log entry.
type SyncType string

const (
	SyncTypeFileUpload    SyncType = "file_upload"
	SyncTypeFileDelete    SyncType = "file_delete"
	SyncTypeFullBackup    SyncType = "full_backup"
	SyncTypePatternBackup SyncType = "pattern_backup"
)

func (t SyncType) String() string { return string(t) }

// SyncStatus is the outcome recorded in a sync log entry.
type SyncStatus string

const (
	SyncStatusSuccess SyncStatus = "success"
	SyncStatusError   SyncStatus = "error"
	SyncStatusPending SyncStatus = "pending"
)

func (s SyncStatus) String() string { return string(s) }

func (s SyncStatus) IsValid() bool {
	switch s {
	case SyncStatusSuccess, SyncStatusError, SyncStatusPending:
		return true
	}
	return false
}

// ShoppingItemType is the kind of thing a shopping list item refers to.
type ShoppingItemType string

const (
	ShoppingItemYarn    ShoppingItemType = "yarn"
	ShoppingItemPattern ShoppingItemType = "pattern"
	ShoppingItemNotion  ShoppingItemType = "notion"
	ShoppingItemTool    ShoppingItemType = "tool"
)

func (t ShoppingItemType) String() string { return string(t) }

func (t ShoppingItemType) IsValid() bool {
	switch t {
	case ShoppingItemYarn, ShoppingItemPattern, ShoppingItemNotion, ShoppingItemTool:
		return true
	}
	return false
}
