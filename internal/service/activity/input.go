package activity

import (
	"fmt"
	"time"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
	"github.com/heartmarshall/yarnstash-backend/internal/export"
)

// RecentInput selects a page of the merged feed. Zero Limit and Page use
// the defaults; an empty Types includes every family.
type RecentInput struct {
	Limit int
	Page  int
	Types []domain.ActivityType
}

func (i RecentInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be positive"})
	}
	if i.Page < 0 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be positive"})
	}
	for _, t := range i.Types {
		if !t.IsValid() {
			errs = append(errs, domain.FieldError{Field: "type", Message: fmt.Sprintf("unknown type %q", t)})
		}
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SummaryInput selects the trailing window. Empty Period means a week.
type SummaryInput struct {
	Period domain.SummaryPeriod
}

func (i SummaryInput) Validate() error {
	if i.Period != "" && !i.Period.IsValid() {
		return domain.NewValidationError("period", "must be one of day, week, month, year")
	}
	return nil
}

// CalendarInput selects a calendar month.
type CalendarInput struct {
	Year  int
	Month int
}

func (i CalendarInput) Validate() error {
	var errs []domain.FieldError
	if i.Year < 1 || i.Year > 9999 {
		errs = append(errs, domain.FieldError{Field: "year", Message: "out of range"})
	}
	if i.Month < 1 || i.Month > 12 {
		errs = append(errs, domain.FieldError{Field: "month", Message: "must be between 1 and 12"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ExportInput selects the export window and format. The window is
// [StartDate, EndDate); both bounds are set together or not at all.
type ExportInput struct {
	StartDate *time.Time
	EndDate   *time.Time
	Format    export.Kind
}

func (i ExportInput) Validate() error {
	var errs []domain.FieldError
	if (i.StartDate == nil) != (i.EndDate == nil) {
		errs = append(errs, domain.FieldError{Field: "startDate", Message: "startDate and endDate must be given together"})
	}
	if i.StartDate != nil && i.EndDate != nil && !i.StartDate.Before(*i.EndDate) {
		errs = append(errs, domain.FieldError{Field: "endDate", Message: "must be after startDate"})
	}
	if i.Format != "" && i.Format != export.KindJSON && i.Format != export.KindCSV {
		errs = append(errs, domain.FieldError{Field: "format", Message: "must be json or csv"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
