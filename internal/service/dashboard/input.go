package dashboard

import "github.com/heartmarshall/yarnstash-backend/internal/domain"

const (
	DefaultRecentProjects = 5
	MaxRecentProjects     = 50

	DefaultDeadlineDays = 30
	MaxDeadlineDays     = 365
	deadlineLimit       = 10

	statsWindowDays = 30
)

// RecentProjectsInput bounds the in-progress project list. Zero means the
// default.
type RecentProjectsInput struct {
	Limit int
}

func (i RecentProjectsInput) Validate() error {
	if i.Limit < 0 || i.Limit > MaxRecentProjects {
		return domain.NewValidationError("limit", "must be between 1 and 50")
	}
	return nil
}

// DeadlinesInput sets how many days ahead to look. Zero means the default.
type DeadlinesInput struct {
	Days int
}

func (i DeadlinesInput) Validate() error {
	if i.Days < 0 || i.Days > MaxDeadlineDays {
		return domain.NewValidationError("days", "must be between 1 and 365")
	}
	return nil
}

// CompletionRateInput selects the trailing window. Empty means a year.
type CompletionRateInput struct {
	Period domain.CompletionPeriod
}

func (i CompletionRateInput) Validate() error {
	if i.Period != "" && !i.Period.IsValid() {
		return domain.NewValidationError("period", "must be one of month, quarter, year")
	}
	return nil
}
