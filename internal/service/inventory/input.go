package inventory

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
)

const maxTitleLength = 200

var (
	yarnConditions = []string{"excellent", "good", "fair", "poor"}
	craftTypes     = []string{"knitting", "crochet", "weaving", "spinning", "dyeing"}
	progressTypes  = []string{"rows_completed", "percentage", "milestone"}
)

func validationError(errs []domain.FieldError) error {
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func oneOf(field string, v *string, allowed []string) []domain.FieldError {
	if v == nil || slices.Contains(allowed, *v) {
		return nil
	}
	return []domain.FieldError{{Field: field, Message: "must be one of " + strings.Join(allowed, ", ")}}
}

func notNegative[T int | float64](field string, v *T) []domain.FieldError {
	if v != nil && *v < 0 {
		return []domain.FieldError{{Field: field, Message: "must not be negative"}}
	}
	return nil
}

func requiredTitle(field, v string) []domain.FieldError {
	v = strings.TrimSpace(v)
	switch {
	case v == "":
		return []domain.FieldError{{Field: field, Message: "required"}}
	case len(v) > maxTitleLength:
		return []domain.FieldError{{Field: field, Message: "too long"}}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Yarn
// ---------------------------------------------------------------------------

// YarnListInput filters and pages the yarn stash.
type YarnListInput struct {
	PageInput
	Search         string
	ColorFamily    string
	WeightCategory string
	BrandID        *uuid.UUID
}

func (i YarnListInput) Validate() error {
	return validationError(i.validate())
}

// YarnInput is the full editable state of a yarn row. SkeinsRemaining
// defaults to SkeinsTotal and Condition to excellent.
type YarnInput struct {
	YarnLineID       *uuid.UUID
	Colorway         *string
	ColorFamily      *string
	DyeLot           *string
	SkeinsTotal      int
	SkeinsRemaining  *float64
	TotalYardage     *int
	RemainingYardage *int
	PurchaseDate     *time.Time
	PurchasePrice    *float64
	Vendor           *string
	StorageLocation  *string
	Condition        string
	Notes            *string
	IsFavorite       bool
}

func (i YarnInput) Validate() error {
	var errs []domain.FieldError
	if i.SkeinsTotal < 1 {
		errs = append(errs, domain.FieldError{Field: "skeinsTotal", Message: "must be at least 1"})
	}
	errs = append(errs, notNegative("skeinsRemaining", i.SkeinsRemaining)...)
	if i.SkeinsRemaining != nil && *i.SkeinsRemaining > float64(i.SkeinsTotal) {
		errs = append(errs, domain.FieldError{Field: "skeinsRemaining", Message: "must not exceed skeinsTotal"})
	}
	errs = append(errs, notNegative("totalYardage", i.TotalYardage)...)
	errs = append(errs, notNegative("remainingYardage", i.RemainingYardage)...)
	errs = append(errs, notNegative("purchasePrice", i.PurchasePrice)...)
	if i.Condition != "" {
		errs = append(errs, oneOf("condition", &i.Condition, yarnConditions)...)
	}
	return validationError(errs)
}

func (i YarnInput) apply(y *domain.YarnStock) {
	y.YarnLineID = i.YarnLineID
	y.Colorway = i.Colorway
	y.ColorFamily = i.ColorFamily
	y.DyeLot = i.DyeLot
	y.SkeinsTotal = i.SkeinsTotal
	y.SkeinsRemaining = float64(i.SkeinsTotal)
	if i.SkeinsRemaining != nil {
		y.SkeinsRemaining = *i.SkeinsRemaining
	}
	y.TotalYardage = i.TotalYardage
	y.RemainingYardage = i.RemainingYardage
	y.PurchaseDate = i.PurchaseDate
	y.PurchasePrice = i.PurchasePrice
	y.Vendor = i.Vendor
	y.StorageLocation = i.StorageLocation
	y.Condition = i.Condition
	y.Notes = i.Notes
	y.IsFavorite = i.IsFavorite
}

// ---------------------------------------------------------------------------
// Patterns
// ---------------------------------------------------------------------------

// PatternListInput filters and pages the pattern library.
type PatternListInput struct {
	PageInput
	Search     string
	CraftType  string
	Difficulty *int
	IsFree     *bool
}

func (i PatternListInput) Validate() error {
	errs := i.validate()
	if i.CraftType != "" {
		errs = append(errs, oneOf("craftType", &i.CraftType, craftTypes)...)
	}
	if i.Difficulty != nil && (*i.Difficulty < 1 || *i.Difficulty > 5) {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "must be between 1 and 5"})
	}
	return validationError(errs)
}

// PatternInput is the full editable state of a pattern. The stored file is
// managed by the backup service and is not part of it.
type PatternInput struct {
	DesignerID       *uuid.UUID
	Title            string
	CraftType        *string
	DifficultyLevel  *int
	OriginalFilename *string
	FileType         *string
	YardageRequired  *int
	Price            *float64
	IsFree           bool
	PersonalNotes    *string
	IsFavorite       bool
}

func (i PatternInput) Validate() error {
	errs := requiredTitle("title", i.Title)
	errs = append(errs, oneOf("craftType", i.CraftType, craftTypes)...)
	if i.DifficultyLevel != nil && (*i.DifficultyLevel < 1 || *i.DifficultyLevel > 5) {
		errs = append(errs, domain.FieldError{Field: "difficultyLevel", Message: "must be between 1 and 5"})
	}
	errs = append(errs, notNegative("yardageRequired", i.YardageRequired)...)
	errs = append(errs, notNegative("price", i.Price)...)
	return validationError(errs)
}

func (i PatternInput) apply(p *domain.Pattern) {
	p.DesignerID = i.DesignerID
	p.Title = strings.TrimSpace(i.Title)
	p.CraftType = i.CraftType
	p.DifficultyLevel = i.DifficultyLevel
	p.YardageRequired = i.YardageRequired
	p.Price = i.Price
	p.IsFree = i.IsFree
	p.PersonalNotes = i.PersonalNotes
	p.IsFavorite = i.IsFavorite
}

// ---------------------------------------------------------------------------
// Projects
// ---------------------------------------------------------------------------

// ProjectListInput filters and pages the user's projects.
type ProjectListInput struct {
	PageInput
	Status domain.ProjectStatus
	Search string
}

func (i ProjectListInput) Validate() error {
	errs := i.validate()
	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: fmt.Sprintf("unknown status %q", i.Status)})
	}
	return validationError(errs)
}

// ProjectInput is the full editable state of a project. An empty Status
// means queued on create and unchanged on update.
type ProjectInput struct {
	PatternID            *uuid.UUID
	Name                 string
	Status               domain.ProjectStatus
	Priority             int
	StartDate            *time.Time
	TargetCompletionDate *time.Time
	CompletionDate       *time.Time
	SizeMaking           *string
	Modifications        *string
	Recipient            *string
}

func (i ProjectInput) Validate() error {
	errs := requiredTitle("name", i.Name)
	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: fmt.Sprintf("unknown status %q", i.Status)})
	}
	return validationError(errs)
}

func (i ProjectInput) apply(p *domain.Project) {
	p.PatternID = i.PatternID
	p.Name = strings.TrimSpace(i.Name)
	if i.Status != "" {
		p.Status = i.Status
	}
	p.Priority = i.Priority
	p.StartDate = i.StartDate
	p.TargetCompletionDate = i.TargetCompletionDate
	p.CompletionDate = i.CompletionDate
	p.SizeMaking = i.SizeMaking
	p.Modifications = i.Modifications
	p.Recipient = i.Recipient
}

// StatusInput moves a project to a new status.
type StatusInput struct {
	Status domain.ProjectStatus
}

func (i StatusInput) Validate() error {
	if !i.Status.IsValid() {
		return domain.NewValidationError("status", "must be one of queued, active, completed, frogged, hibernating")
	}
	return nil
}

// maxHoursPerEntry is the largest value project_progress.hours_worked holds.
const maxHoursPerEntry = 99.99

// ProgressInput logs a progress entry. ProgressDate defaults to now.
type ProgressInput struct {
	ProgressDate        *time.Time
	ProgressType        *string
	ProgressValue       *int
	ProgressDescription *string
	HoursWorked         *float64
	Notes               *string
}

func (i ProgressInput) Validate() error {
	errs := oneOf("progressType", i.ProgressType, progressTypes)
	errs = append(errs, notNegative("progressValue", i.ProgressValue)...)
	if i.ProgressType != nil && *i.ProgressType == "percentage" && i.ProgressValue != nil && *i.ProgressValue > 100 {
		errs = append(errs, domain.FieldError{Field: "progressValue", Message: "must not exceed 100 for a percentage"})
	}
	errs = append(errs, notNegative("hoursWorked", i.HoursWorked)...)
	if i.HoursWorked != nil && *i.HoursWorked > maxHoursPerEntry {
		errs = append(errs, domain.FieldError{Field: "hoursWorked", Message: "must not exceed 99.99"})
	}
	return validationError(errs)
}
