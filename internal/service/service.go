package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/wl0182/Restaurant-Ordering-System/internal/entity"
	"github.com/wl0182/Restaurant-Ordering-System/pkg/broker"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks -typed

type BackOfficeAPI interface {
	KitchenQueue(ctx context.Context, token string) ([]entity.KitchenItem, error)
	ServeOrderItem(ctx context.Context, token string, orderItemID int64) error
	ServeOrder(ctx context.Context, token string, orderID int64) (entity.Order, error)

	MenuItems(ctx context.Context, token string) ([]entity.MenuItem, error)
	MenuItem(ctx context.Context, token string, id int64) (entity.MenuItem, error)
	MenuItemsByCategory(ctx context.Context, token, category string) ([]entity.MenuItem, error)
	ToggleAvailability(ctx context.Context, token string, id int64) (entity.MenuItem, error)
	AddMenuItem(ctx context.Context, token string, draft entity.MenuItemDraft) (entity.MenuItem, error)
	UpdateMenuItemName(ctx context.Context, token string, id int64, name string) (entity.MenuItem, error)
	UpdateMenuItemPrice(ctx context.Context, token string, id int64, price decimal.Decimal) (entity.MenuItem, error)
	UpdateMenuItemCategory(ctx context.Context, token string, id int64, category string) (entity.MenuItem, error)

	AddStaff(ctx context.Context, token string, s entity.Staff) (entity.StaffAdded, error)

	RevenueByDate(ctx context.Context, token string) (map[string]decimal.Decimal, error)
	RevenueByMenuItem(ctx context.Context, token string) (map[string]decimal.Decimal, error)
	MostOrderedItems(ctx context.Context, token string) ([]entity.MostOrderedItem, error)
	AverageSessionRevenue(ctx context.Context, token string) ([]entity.AverageRevenue, error)

	Session(ctx context.Context, token string, id int64) (entity.TableSession, error)
	SessionOrders(ctx context.Context, token string, sessionID int64) ([]entity.Order, error)
	ItemSummary(ctx context.Context, token string, sessionID int64) ([]entity.ItemSummary, error)
	ItemNames(ctx context.Context, token string, sessionID int64) ([]string, error)
	Order(ctx context.Context, token string, id int64) (entity.Order, error)
	OrderStatus(ctx context.Context, token string, orderID int64) (entity.OrderStatus, error)
}

type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Account is a TokenSource that can be told its token was rejected.
type Account interface {
	TokenSource
	Invalidate(ctx context.Context)
}

type KitchenPublisher interface {
	SendKitchenItemQueued(ctx context.Context, e broker.KitchenItemQueuedEvent)
}

// Service backs the kitchen, admin and stats views.
type Service struct {
	api BackOfficeAPI
}

func New(api BackOfficeAPI) *Service {
	return &Service{
		api: api,
	}
}
