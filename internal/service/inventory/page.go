package inventory

import (
	"math"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
)

// Paging defaults.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Page is one page of a filtered listing.
type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// PageInput selects a page. Zero values use page 1 and DefaultLimit.
type PageInput struct {
	Page  int
	Limit int
}

func (i PageInput) validate() []domain.FieldError {
	var errs []domain.FieldError
	if i.Page < 0 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be positive"})
	}
	if i.Limit < 0 || i.Limit > MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 1 and 100"})
	}
	return errs
}

// resolve returns the page number, the limit and the row offset. A page
// too far out for the offset to fit an int gets math.MaxInt, which selects
// nothing.
func (i PageInput) resolve() (page, limit, offset int) {
	page, limit = max(i.Page, 1), i.Limit
	if limit == 0 {
		limit = DefaultLimit
	}
	offset = math.MaxInt
	if page-1 <= math.MaxInt/limit {
		offset = (page - 1) * limit
	}
	return page, limit, offset
}

func newPage[T any](items []T, total, page, limit int) *Page[T] {
	return &Page[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + limit - 1) / limit,
	}
}
