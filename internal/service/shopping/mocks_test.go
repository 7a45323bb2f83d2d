package shopping

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
)

var (
	_ listRepo  = &listRepoMock{}
	_ yarnRepo  = &yarnRepoMock{}
	_ txManager = &txManagerMock{}
)

type listRepoMock struct {
	ListListsFunc           func(ctx context.Context, userID uuid.UUID) ([]domain.ShoppingList, error)
	GetListFunc             func(ctx context.Context, userID, listID uuid.UUID) (*domain.ShoppingList, error)
	CreateListFunc          func(ctx context.Context, l *domain.ShoppingList) error
	FindActiveListFunc      func(ctx context.Context, userID uuid.UUID) (*domain.ShoppingList, error)
	UpdateListFunc          func(ctx context.Context, l *domain.ShoppingList) error
	DeleteListFunc          func(ctx context.Context, userID, listID uuid.UUID) error
	DeactivateOthersFunc    func(ctx context.Context, userID, keepID uuid.UUID) error
	ListItemsFunc           func(ctx context.Context, listID uuid.UUID) ([]domain.ShoppingListItem, error)
	GetItemFunc             func(ctx context.Context, listID, itemID uuid.UUID) (*domain.ShoppingListItem, error)
	FindPendingYarnItemFunc func(ctx context.Context, listID, yarnLineID uuid.UUID, colorway *string) (*domain.ShoppingListItem, error)
	CreateItemFunc          func(ctx context.Context, item *domain.ShoppingListItem) error
	AddQuantityFunc         func(ctx context.Context, itemID uuid.UUID, delta int) error
	MarkPurchasedFunc       func(ctx context.Context, itemID uuid.UUID, at time.Time, actualPrice *float64) error
	UpdateItemFunc          func(ctx context.Context, item *domain.ShoppingListItem) error
	DeleteItemFunc          func(ctx context.Context, listID, itemID uuid.UUID) error
}

func (m *listRepoMock) ListLists(ctx context.Context, userID uuid.UUID) ([]domain.ShoppingList, error) {
	if m.ListListsFunc == nil {
		panic("listRepoMock.ListListsFunc: method is nil but listRepo.ListLists was just called")
	}
	return m.ListListsFunc(ctx, userID)
}

func (m *listRepoMock) GetList(ctx context.Context, userID, listID uuid.UUID) (*domain.ShoppingList, error) {
	if m.GetListFunc == nil {
		panic("listRepoMock.GetListFunc: method is nil but listRepo.GetList was just called")
	}
	return m.GetListFunc(ctx, userID, listID)
}

func (m *listRepoMock) CreateList(ctx context.Context, l *domain.ShoppingList) error {
	if m.CreateListFunc == nil {
		panic("listRepoMock.CreateListFunc: method is nil but listRepo.CreateList was just called")
	}
	return m.CreateListFunc(ctx, l)
}

func (m *listRepoMock) FindActiveList(ctx context.Context, userID uuid.UUID) (*domain.ShoppingList, error) {
	if m.FindActiveListFunc == nil {
		panic("listRepoMock.FindActiveListFunc: method is nil but listRepo.FindActiveList was just called")
	}
	return m.FindActiveListFunc(ctx, userID)
}

func (m *listRepoMock) UpdateList(ctx context.Context, l *domain.ShoppingList) error {
	if m.UpdateListFunc == nil {
		panic("listRepoMock.UpdateListFunc: method is nil but listRepo.UpdateList was just called")
	}
	return m.UpdateListFunc(ctx, l)
}

func (m *listRepoMock) DeleteList(ctx context.Context, userID, listID uuid.UUID) error {
	if m.DeleteListFunc == nil {
		panic("listRepoMock.DeleteListFunc: method is nil but listRepo.DeleteList was just called")
	}
	return m.DeleteListFunc(ctx, userID, listID)
}

func (m *listRepoMock) UpdateItem(ctx context.Context, item *domain.ShoppingListItem) error {
	if m.UpdateItemFunc == nil {
		panic("listRepoMock.UpdateItemFunc: method is nil but listRepo.UpdateItem was just called")
	}
	return m.UpdateItemFunc(ctx, item)
}

func (m *listRepoMock) DeleteItem(ctx context.Context, listID, itemID uuid.UUID) error {
	if m.DeleteItemFunc == nil {
		panic("listRepoMock.DeleteItemFunc: method is nil but listRepo.DeleteItem was just called")
	}
	return m.DeleteItemFunc(ctx, listID, itemID)
}

func (m *listRepoMock) DeactivateOthers(ctx context.Context, userID, keepID uuid.UUID) error {
	if m.DeactivateOthersFunc == nil {
		panic("listRepoMock.DeactivateOthersFunc: method is nil but listRepo.DeactivateOthers was just called")
	}
	return m.DeactivateOthersFunc(ctx, userID, keepID)
}

func (m *listRepoMock) ListItems(ctx context.Context, listID uuid.UUID) ([]domain.ShoppingListItem, error) {
	if m.ListItemsFunc == nil {
		panic("listRepoMock.ListItemsFunc: method is nil but listRepo.ListItems was just called")
	}
	return m.ListItemsFunc(ctx, listID)
}

func (m *listRepoMock) GetItem(ctx context.Context, listID, itemID uuid.UUID) (*domain.ShoppingListItem, error) {
	if m.GetItemFunc == nil {
		panic("listRepoMock.GetItemFunc: method is nil but listRepo.GetItem was just called")
	}
	return m.GetItemFunc(ctx, listID, itemID)
}

func (m *listRepoMock) FindPendingYarnItem(ctx context.Context, listID, yarnLineID uuid.UUID, colorway *string) (*domain.ShoppingListItem, error) {
	if m.FindPendingYarnItemFunc == nil {
		panic("listRepoMock.FindPendingYarnItemFunc: method is nil but listRepo.FindPendingYarnItem was just called")
	}
	return m.FindPendingYarnItemFunc(ctx, listID, yarnLineID, colorway)
}

func (m *listRepoMock) CreateItem(ctx context.Context, item *domain.ShoppingListItem) error {
	if m.CreateItemFunc == nil {
		panic("listRepoMock.CreateItemFunc: method is nil but listRepo.CreateItem was just called")
	}
	return m.CreateItemFunc(ctx, item)
}

func (m *listRepoMock) AddQuantity(ctx context.Context, itemID uuid.UUID, delta int) error {
	if m.AddQuantityFunc == nil {
		panic("listRepoMock.AddQuantityFunc: method is nil but listRepo.AddQuantity was just called")
	}
	return m.AddQuantityFunc(ctx, itemID, delta)
}

func (m *listRepoMock) MarkPurchased(ctx context.Context, itemID uuid.UUID, at time.Time, actualPrice *float64) error {
	if m.MarkPurchasedFunc == nil {
		panic("listRepoMock.MarkPurchasedFunc: method is nil but listRepo.MarkPurchased was just called")
	}
	return m.MarkPurchasedFunc(ctx, itemID, at, actualPrice)
}

type yarnRepoMock struct {
	CreateFunc func(ctx context.Context, y *domain.YarnStock) error

	mu    sync.Mutex
	calls []*domain.YarnStock
}

func (m *yarnRepoMock) Create(ctx context.Context, y *domain.YarnStock) error {
	if m.CreateFunc == nil {
		panic("yarnRepoMock.CreateFunc: method is nil but yarnRepo.Create was just called")
	}
	m.mu.Lock()
	m.calls = append(m.calls, y)
	m.mu.Unlock()
	return m.CreateFunc(ctx, y)
}

func (m *yarnRepoMock) CreateCalls() []*domain.YarnStock {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// txManagerMock runs fn inline and counts transactions.
type txManagerMock struct {
	mu    sync.Mutex
	count int
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	m.count++
	m.mu.Unlock()
	return fn(ctx)
}

func (m *txManagerMock) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.count
}
