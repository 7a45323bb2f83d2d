package shopping

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
)

const (
	maxNameLength   = 200
	defaultListName = "My Shopping List"
)

// CreateListInput holds parameters for creating a shopping list.
type CreateListInput struct {
	Name        string
	Description *string
	IsActive    bool
}

func (i CreateListInput) Validate() error {
	var errs []domain.FieldError
	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateListInput holds a partial list update. Nil fields are left unchanged.
type UpdateListInput struct {
	Name        *string
	Description *string
	IsActive    *bool
}

func (i UpdateListInput) Validate() error {
	if i.Name == nil {
		return nil
	}
	name := strings.TrimSpace(*i.Name)
	if name == "" {
		return domain.NewValidationError("name", "required")
	}
	if len(name) > maxNameLength {
		return domain.NewValidationError("name", "too long")
	}
	return nil
}

// AddItemInput holds parameters for adding an item to a list.
// Quantity defaults to 1.
type AddItemInput struct {
	ItemType       domain.ShoppingItemType
	YarnLineID     *uuid.UUID
	PatternID      *uuid.UUID
	ItemName       *string
	Colorway       *string
	Quantity       int
	EstimatedPrice *float64
	Vendor         *string
	URL            *string
	Priority       int
	Notes          *string
}

func (i AddItemInput) Validate() error {
	var errs []domain.FieldError
	if !i.ItemType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "itemType", Message: "must be one of yarn, pattern, notion, tool"})
	}
	if i.Quantity < 0 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be positive"})
	}
	if i.EstimatedPrice != nil && *i.EstimatedPrice < 0 {
		errs = append(errs, domain.FieldError{Field: "estimatedPrice", Message: "must not be negative"})
	}
	if i.YarnLineID == nil && i.PatternID == nil && (i.ItemName == nil || strings.TrimSpace(*i.ItemName) == "") {
		errs = append(errs, domain.FieldError{Field: "itemName", Message: "required when no yarn line or pattern is referenced"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// MarkPurchasedInput holds parameters for marking an item bought.
// ActualPrice falls back to the item's estimated price.
type MarkPurchasedInput struct {
	ActualPrice    *float64
	AddToInventory bool
}

func (i MarkPurchasedInput) Validate() error {
	if i.ActualPrice != nil && *i.ActualPrice < 0 {
		return domain.NewValidationError("actualPrice", "must not be negative")
	}
	return nil
}

// UpdateItemInput holds a partial item update. Nil fields are left unchanged.
type UpdateItemInput struct {
	ItemName       *string
	Colorway       *string
	Quantity       *int
	EstimatedPrice *float64
	Vendor         *string
	URL            *string
	Priority       *int
	Notes          *string
}

func (i UpdateItemInput) Validate() error {
	var errs []domain.FieldError
	if i.Quantity != nil && *i.Quantity < 1 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be at least 1"})
	}
	if i.EstimatedPrice != nil && *i.EstimatedPrice < 0 {
		errs = append(errs, domain.FieldError{Field: "estimatedPrice", Message: "must not be negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateItemInput) apply(item *domain.ShoppingListItem) {
	if i.ItemName != nil {
		item.ItemName = i.ItemName
	}
	if i.Colorway != nil {
		item.Colorway = i.Colorway
	}
	if i.Quantity != nil {
		item.Quantity = *i.Quantity
	}
	if i.EstimatedPrice != nil {
		item.EstimatedPrice = i.EstimatedPrice
	}
	if i.Vendor != nil {
		item.Vendor = i.Vendor
	}
	if i.URL != nil {
		item.URL = i.URL
	}
	if i.Priority != nil {
		item.Priority = *i.Priority
	}
	if i.Notes != nil {
		item.Notes = i.Notes
	}
}
