package domain

import (
	"time"

	"github.com/google/uuid"
)

// ShoppingList is a named list of things to buy.
type ShoppingList struct {
	ID          uuid.UUID          `json:"id"`
	UserID      uuid.UUID          `json:"userId"`
	Name        string             `json:"name"`
	Description *string            `json:"description"`
	IsActive    bool               `json:"isActive"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
	Items       []ShoppingListItem `json:"items" db:"-"`
}

// ShoppingListItem is one entry of a shopping list. BrandName, LineName,
// YardagePerSkein and PatternTitle are filled from joins when the item
// references a yarn line or a pattern.
type ShoppingListItem struct {
	ID             uuid.UUID        `json:"id"`
	ShoppingListID uuid.UUID        `json:"shoppingListId"`
	ItemType       ShoppingItemType `json:"itemType"`
	YarnLineID     *uuid.UUID       `json:"yarnLineId"`
	PatternID      *uuid.UUID       `json:"patternId"`
	ItemName       *string          `json:"itemName"`
	Colorway       *string          `json:"colorway"`
	Quantity       int              `json:"quantity"`
	EstimatedPrice *float64         `json:"estimatedPrice"`
	Vendor         *string          `json:"vendor"`
	URL            *string          `json:"url"`
	Priority       int              `json:"priority"`
	Purchased      bool             `json:"purchased"`
	PurchaseDate   *time.Time       `json:"purchaseDate"`
	ActualPrice    *float64         `json:"actualPrice"`
	Notes          *string          `json:"notes"`
	CreatedAt      time.Time        `json:"createdAt"`

	BrandName       *string `json:"brandName"`
	LineName        *string `json:"lineName"`
	YardagePerSkein *int    `json:"yardagePerSkein"`
	PatternTitle    *string `json:"patternTitle"`
}

// DisplayName renders the item the way lists and reports show it:
// brand and line (plus colorway) for yarn, the title for patterns,
// the free-text name otherwise.
func (i *ShoppingListItem) DisplayName() string {
	switch {
	case i.LineName != nil:
		name := *i.LineName
		if i.BrandName != nil {
			name = *i.BrandName + " " + name
		}
		if i.Colorway != nil && *i.Colorway != "" {
			name += " - " + *i.Colorway
		}
		return name
	case i.PatternTitle != nil:
		return "Pattern: " + *i.PatternTitle
	case i.ItemName != nil:
		return *i.ItemName
	}
	return ""
}

// EstimatedCost is estimated price × quantity, zero when no price is set.
func (i *ShoppingListItem) EstimatedCost() float64 {
	if i.EstimatedPrice == nil {
		return 0
	}
	return *i.EstimatedPrice * float64(i.Quantity)
}

// ActualCost is actual price × quantity, zero when no price is set.
func (i *ShoppingListItem) ActualCost() float64 {
	if i.ActualPrice == nil {
		return 0
	}
	return *i.ActualPrice * float64(i.Quantity)
}

// ShoppingListTotals summarises a list's items.
type ShoppingListTotals struct {
	TotalEstimatedCost float64 `json:"totalEstimatedCost"`
	TotalActualCost    float64 `json:"totalActualCost"`
	ItemCount          int     `json:"itemCount"`
	PurchasedCount     int     `json:"purchasedCount"`
}

// Totals computes the list summary. The estimate covers every item; the
// actual cost covers purchased items only.
func (l *ShoppingList) Totals() ShoppingListTotals {
	t := ShoppingListTotals{ItemCount: len(l.Items)}
	for i := range l.Items {
		item := &l.Items[i]
		t.TotalEstimatedCost += item.EstimatedCost()
		if item.Purchased {
			t.PurchasedCount++
			t.TotalActualCost += item.ActualCost()
		}
	}
	return t
}
