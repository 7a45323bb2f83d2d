package shopping

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
	"github.com/heartmarshall/yarnstash-backend/pkg/ctxutil"
)

// AddItem adds an item to a list. A yarn item whose line and colorway match
// a pending item already on the list increases that item's quantity instead.
func (s *Service) AddItem(ctx context.Context, listID uuid.UUID, input AddItemInput) (*domain.ShoppingListItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}

	var out *domain.ShoppingListItem
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.lists.GetList(txCtx, userID, listID); err != nil {
			return fmt.Errorf("get list: %w", err)
		}

		if input.YarnLineID != nil {
			existing, err := s.lists.FindPendingYarnItem(txCtx, listID, *input.YarnLineID, input.Colorway)
			switch {
			case err == nil:
				if err := s.lists.AddQuantity(txCtx, existing.ID, quantity); err != nil {
					return fmt.Errorf("add quantity: %w", err)
				}
				out, err = s.lists.GetItem(txCtx, listID, existing.ID)
				if err != nil {
					return fmt.Errorf("get item: %w", err)
				}
				return nil
			case !errors.Is(err, domain.ErrNotFound):
				return fmt.Errorf("find item: %w", err)
			}
		}

		item := &domain.ShoppingListItem{
			ShoppingListID: listID,
			ItemType:       input.ItemType,
			YarnLineID:     input.YarnLineID,
			PatternID:      input.PatternID,
			ItemName:       input.ItemName,
			Colorway:       input.Colorway,
			Quantity:       quantity,
			EstimatedPrice: input.EstimatedPrice,
			Vendor:         input.Vendor,
			URL:            input.URL,
			Priority:       input.Priority,
			Notes:          input.Notes,
			CreatedAt:      s.now().UTC(),
		}
		if err := s.lists.CreateItem(txCtx, item); err != nil {
			return fmt.Errorf("create item: %w", err)
		}
		created, err := s.lists.GetItem(txCtx, listID, item.ID)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}
		out = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MarkPurchased flags an item as bought now. With AddToInventory set, a yarn
// item also becomes a yarn inventory row in the same transaction.
func (s *Service) MarkPurchased(ctx context.Context, listID, itemID uuid.UUID, input MarkPurchasedInput) (*domain.ShoppingListItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	var (
		out     *domain.ShoppingListItem
		stocked bool
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		list, err := s.lists.GetList(txCtx, userID, listID)
		if err != nil {
			return fmt.Errorf("get list: %w", err)
		}
		item, err := s.lists.GetItem(txCtx, listID, itemID)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}
		if item.Purchased {
			return fmt.Errorf("item %s: already purchased: %w", itemID, domain.ErrConflict)
		}

		price := input.ActualPrice
		if price == nil {
			price = item.EstimatedPrice
		}
		if err := s.lists.MarkPurchased(txCtx, itemID, now, price); err != nil {
			return fmt.Errorf("mark purchased: %w", err)
		}

		if input.AddToInventory && item.YarnLineID != nil {
			if err := s.yarn.Create(txCtx, inventoryRow(userID, list.Name, item, price, now)); err != nil {
				return fmt.Errorf("create inventory: %w", err)
			}
			stocked = true
		}

		item.Purchased = true
		item.PurchaseDate = &now
		item.ActualPrice = price
		out = item
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "shopping item purchased",
		slog.String("user_id", userID.String()),
		slog.String("item_id", itemID.String()),
		slog.Bool("added_to_inventory", stocked),
	)

	return out, nil
}

// UpdateItem applies a partial update to an item of the user's list.
func (s *Service) UpdateItem(ctx context.Context, listID, itemID uuid.UUID, input UpdateItemInput) (*domain.ShoppingListItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var out *domain.ShoppingListItem
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.lists.GetList(txCtx, userID, listID); err != nil {
			return fmt.Errorf("get list: %w", err)
		}
		item, err := s.lists.GetItem(txCtx, listID, itemID)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}
		input.apply(item)
		if err := s.lists.UpdateItem(txCtx, item); err != nil {
			return fmt.Errorf("update item: %w", err)
		}
		out = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RemoveItem deletes an item from the user's list.
func (s *Service) RemoveItem(ctx context.Context, listID, itemID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if _, err := s.lists.GetList(ctx, userID, listID); err != nil {
		return fmt.Errorf("get list: %w", err)
	}
	if err := s.lists.DeleteItem(ctx, listID, itemID); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

func inventoryRow(userID uuid.UUID, listName string, item *domain.ShoppingListItem, price *float64, at time.Time) *domain.YarnStock {
	var yardage *int
	if item.YardagePerSkein != nil {
		y := *item.YardagePerSkein * item.Quantity
		yardage = &y
	}
	notes := "Added from shopping list: " + listName
	return &domain.YarnStock{
		UserID:           userID,
		YarnLineID:       item.YarnLineID,
		Colorway:         item.Colorway,
		SkeinsTotal:      item.Quantity,
		SkeinsRemaining:  float64(item.Quantity),
		TotalYardage:     yardage,
		RemainingYardage: yardage,
		PurchaseDate:     &at,
		PurchasePrice:    price,
		Vendor:           item.Vendor,
		Notes:            &notes,
		CreatedAt:        at,
	}
}
