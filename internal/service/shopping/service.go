// Package shopping manages shopping lists and renders them for export.
package shopping

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
)

type listRepo interface {
	ListLists(ctx context.Context, userID uuid.UUID) ([]domain.ShoppingList, error)
	GetList(ctx context.Context, userID, listID uuid.UUID) (*domain.ShoppingList, error)
	CreateList(ctx context.Context, l *domain.ShoppingList) error
	FindActiveList(ctx context.Context, userID uuid.UUID) (*domain.ShoppingList, error)
	UpdateList(ctx context.Context, l *domain.ShoppingList) error
	DeleteList(ctx context.Context, userID, listID uuid.UUID) error
	DeactivateOthers(ctx context.Context, userID, keepID uuid.UUID) error
	ListItems(ctx context.Context, listID uuid.UUID) ([]domain.ShoppingListItem, error)
	GetItem(ctx context.Context, listID, itemID uuid.UUID) (*domain.ShoppingListItem, error)
	FindPendingYarnItem(ctx context.Context, listID, yarnLineID uuid.UUID, colorway *string) (*domain.ShoppingListItem, error)
	CreateItem(ctx context.Context, item *domain.ShoppingListItem) error
	AddQuantity(ctx context.Context, itemID uuid.UUID, delta int) error
	MarkPurchased(ctx context.Context, itemID uuid.UUID, at time.Time, actualPrice *float64) error
	UpdateItem(ctx context.Context, item *domain.ShoppingListItem) error
	DeleteItem(ctx context.Context, listID, itemID uuid.UUID) error
}

type yarnRepo interface {
	Create(ctx context.Context, y *domain.YarnStock) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements shopping list operations.
type Service struct {
	log   *slog.Logger
	lists listRepo
	yarn  yarnRepo
	tx    txManager
	now   func() time.Time
}

// NewService creates a new shopping list service.
func NewService(logger *slog.Logger, lists listRepo, yarn yarnRepo, tx txManager) *Service {
	return &Service{
		log:   logger.With("service", "shopping"),
		lists: lists,
		yarn:  yarn,
		tx:    tx,
		now:   time.Now,
	}
}

// ListWithTotals is a list with its items and computed totals.
type ListWithTotals struct {
	domain.ShoppingList
	domain.ShoppingListTotals
}
