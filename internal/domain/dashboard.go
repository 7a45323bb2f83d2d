package domain

import "time"

// CompletionPeriod is the trailing window of the project completion rate.
type CompletionPeriod string

const (
	CompletionPeriodMonth   CompletionPeriod = "month"
	CompletionPeriodQuarter CompletionPeriod = "quarter"
	CompletionPeriodYear    CompletionPeriod = "year"
)

func (p CompletionPeriod) String() string { return string(p) }

func (p CompletionPeriod) IsValid() bool {
	switch p {
	case CompletionPeriodMonth, CompletionPeriodQuarter, CompletionPeriodYear:
		return true
	}
	return false
}

// DashboardStats is the headline view of a user's stash.
type DashboardStats struct {
	TotalYarn         int           `json:"totalYarn"`
	TotalPatterns     int           `json:"totalPatterns"`
	ActiveProjects    int           `json:"activeProjects"`
	CompletedProjects int           `json:"completedProjects"`
	TotalProjects     int           `json:"totalProjects"`
	YarnValue         float64       `json:"yarnValue"`
	YarnByWeight      []WeightCount `json:"yarnByWeight"`
	RecentActivity    NewItemCounts `json:"recentActivity"`
	LastUpdated       time.Time     `json:"lastUpdated"`
}

// NewItemCounts counts rows created in the trailing stats window.
type NewItemCounts struct {
	NewYarn     int `json:"newYarn"`
	NewPatterns int `json:"newPatterns"`
	NewProjects int `json:"newProjects"`
}

// WeightCount is the number of yarn rows in one weight category. A nil
// category groups yarn with no line or no recorded weight.
type WeightCount struct {
	WeightCategory *string `json:"weightCategory"`
	Count          int     `json:"count"`
}

// ColorCount groups yarn rows by color family.
type ColorCount struct {
	ColorFamily  *string `json:"colorFamily"`
	Count        int     `json:"count"`
	TotalYardage int     `json:"totalYardage"`
}

// YarnTotals are the sums over a user's whole yarn inventory. Value
// treats purchase_price as a per-skein price.
type YarnTotals struct {
	Count            int     `json:"count"`
	Value            float64 `json:"value"`
	TotalYardage     int     `json:"totalYardage"`
	RemainingYardage int     `json:"remainingYardage"`
	TotalSkeins      float64 `json:"totalSkeins"`
	RemainingSkeins  float64 `json:"remainingSkeins"`
}

// YarnUsage reports how much of the stash has been knitted up.
type YarnUsage struct {
	TotalYardage      int          `json:"totalYardage"`
	RemainingYardage  int          `json:"remainingYardage"`
	YardageUsed       int          `json:"yardageUsed"`
	TotalSkeins       float64      `json:"totalSkeins"`
	RemainingSkeins   float64      `json:"remainingSkeins"`
	SkeinsUsed        float64      `json:"skeinsUsed"`
	UsagePercentage   float64      `json:"usagePercentage"`
	ColorDistribution []ColorCount `json:"colorDistribution"`
}

// ProjectWithProgress is an in-flight project with the value of its
// latest progress entry, or 0 when nothing has been logged.
type ProjectWithProgress struct {
	Project
	ProgressPercentage int `json:"progressPercentage"`
}

// CompletionRate compares projects started and finished in a period.
type CompletionRate struct {
	Period            CompletionPeriod `json:"period"`
	StartDate         time.Time        `json:"startDate"`
	ProjectsStarted   int              `json:"projectsStarted"`
	ProjectsCompleted int              `json:"projectsCompleted"`
	CompletionRate    float64          `json:"completionRate"`
}
