package shopping

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
	"github.com/heartmarshall/yarnstash-backend/pkg/ctxutil"
)

// ListLists returns the user's lists without items, the active one first.
func (s *Service) ListLists(ctx context.Context) ([]domain.ShoppingList, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	lists, err := s.lists.ListLists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list shopping lists: %w", err)
	}
	return lists, nil
}

// GetList returns one list with its items and totals.
func (s *Service) GetList(ctx context.Context, listID uuid.UUID) (*ListWithTotals, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	list, err := s.loadList(ctx, userID, listID)
	if err != nil {
		return nil, err
	}
	return &ListWithTotals{ShoppingList: *list, ShoppingListTotals: list.Totals()}, nil
}

// CreateList creates a list. An active list deactivates every other list of
// the user in the same transaction.
func (s *Service) CreateList(ctx context.Context, input CreateListInput) (*domain.ShoppingList, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	list := &domain.ShoppingList{
		UserID:      userID,
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		IsActive:    input.IsActive,
		CreatedAt:   s.now().UTC(),
		Items:       []domain.ShoppingListItem{},
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.lists.CreateList(txCtx, list); err != nil {
			return fmt.Errorf("create list: %w", err)
		}
		if list.IsActive {
			if err := s.lists.DeactivateOthers(txCtx, userID, list.ID); err != nil {
				return fmt.Errorf("deactivate lists: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "shopping list created",
		slog.String("user_id", userID.String()),
		slog.String("list_id", list.ID.String()),
		slog.Bool("active", list.IsActive),
	)

	return list, nil
}

// GetActiveList returns the user's active list with only its pending items.
// A user without an active list gets a new one.
func (s *Service) GetActiveList(ctx context.Context) (*ListWithTotals, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	list, err := s.lists.FindActiveList(ctx, userID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		list = &domain.ShoppingList{
			UserID:    userID,
			Name:      defaultListName,
			IsActive:  true,
			CreatedAt: s.now().UTC(),
		}
		if err := s.lists.CreateList(ctx, list); err != nil {
			return nil, fmt.Errorf("create active list: %w", err)
		}
		s.log.InfoContext(ctx, "default shopping list created",
			slog.String("user_id", userID.String()),
			slog.String("list_id", list.ID.String()),
		)
	case err != nil:
		return nil, fmt.Errorf("find active list: %w", err)
	}

	items, err := s.lists.ListItems(ctx, list.ID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	list.Items = make([]domain.ShoppingListItem, 0, len(items))
	for _, item := range items {
		if !item.Purchased {
			list.Items = append(list.Items, item)
		}
	}
	return &ListWithTotals{ShoppingList: *list, ShoppingListTotals: list.Totals()}, nil
}

// UpdateList applies a partial update. Activating a list that was inactive
// deactivates every other list of the user in the same transaction.
func (s *Service) UpdateList(ctx context.Context, listID uuid.UUID, input UpdateListInput) (*domain.ShoppingList, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var out *domain.ShoppingList
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		list, err := s.lists.GetList(txCtx, userID, listID)
		if err != nil {
			return fmt.Errorf("get list: %w", err)
		}
		activating := input.IsActive != nil && *input.IsActive && !list.IsActive

		if input.Name != nil {
			list.Name = strings.TrimSpace(*input.Name)
		}
		if input.Description != nil {
			list.Description = input.Description
		}
		if input.IsActive != nil {
			list.IsActive = *input.IsActive
		}
		if err := s.lists.UpdateList(txCtx, list); err != nil {
			return fmt.Errorf("update list: %w", err)
		}
		if activating {
			if err := s.lists.DeactivateOthers(txCtx, userID, list.ID); err != nil {
				return fmt.Errorf("deactivate lists: %w", err)
			}
		}
		out = list
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteList removes a list and its items.
func (s *Service) DeleteList(ctx context.Context, listID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.lists.DeleteList(ctx, userID, listID); err != nil {
		return fmt.Errorf("delete list: %w", err)
	}

	s.log.InfoContext(ctx, "shopping list deleted",
		slog.String("user_id", userID.String()),
		slog.String("list_id", listID.String()),
	)
	return nil
}

// loadList fetches a list owned by the user together with its items.
func (s *Service) loadList(ctx context.Context, userID, listID uuid.UUID) (*domain.ShoppingList, error) {
	list, err := s.lists.GetList(ctx, userID, listID)
	if err != nil {
		return nil, fmt.Errorf("get list: %w", err)
	}
	items, err := s.lists.ListItems(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	list.Items = items
	return list, nil
}
