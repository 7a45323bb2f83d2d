package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActivityRecord is a normalized, read-only projection of one domain entity
// for the activity feed. It is built on read and never persisted.
type ActivityRecord struct {
	ID          string         `json:"id"`
	Type        ActivityType   `json:"type"`
	Action      string         `json:"action"`
	Description string         `json:"description"`
	Details     map[string]any `json:"details"`
	EntityID    uuid.UUID      `json:"entityId"`
	OccurredAt  time.Time      `json:"occurredAt"`
}

// ActivityCounts holds per-type counts for a summary window.
type ActivityCounts struct {
	YarnAdded         int `json:"yarnAdded"`
	PatternsAdded     int `json:"patternsAdded"`
	ProjectsStarted   int `json:"projectsStarted"`
	ProjectsCompleted int `json:"projectsCompleted"`
	ProgressUpdates   int `json:"progressUpdates"`
	TotalActivities   int `json:"totalActivities"`
}

// ActivitySummary is the result of counting activity in a trailing window.
type ActivitySummary struct {
	Period    SummaryPeriod  `json:"period"`
	StartDate time.Time      `json:"startDate"`
	Summary   ActivityCounts `json:"summary"`
}

// Calendar item types. project-complete is separate from project so a
// project started and finished in one month shows up on both days.
const (
	CalendarTypeYarn            = "yarn"
	CalendarTypePattern         = "pattern"
	CalendarTypeProject         = "project"
	CalendarTypeProjectComplete = "project-complete"
	CalendarTypeProgress        = "progress"
)

// CalendarItem is one activity placed on a calendar day.
type CalendarItem struct {
	Type  string    `json:"type"`
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Time  time.Time `json:"time"`
}

// ActivityCalendar buckets activities of one month by UTC date (YYYY-MM-DD).
type ActivityCalendar struct {
	Year     int                       `json:"year"`
	Month    int                       `json:"month"`
	Calendar map[string][]CalendarItem `json:"calendar"`
}
