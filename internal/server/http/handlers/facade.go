package handlers

import (
	"context"

	"github.com/polkiloo/canteen/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Login(ctx context.Context, username, password string) (string, error)
	ParseToken(token string) (string, error)
}

// MenuFacade encapsulates catalog and inventory operations exposed via HTTP.
type MenuFacade interface {
	MenuItems(ctx context.Context) ([]model.MenuItem, error)
	MenuItem(ctx context.Context, id int64) (*model.MenuItem, error)
	MenuCategories(ctx context.Context) ([]model.Category, error)
	AddMenuItem(ctx context.Context, item model.MenuItem) (*model.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id int64, update model.MenuItemUpdate) (*model.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id int64) (*model.MenuItem, error)
	BuyMenuItem(ctx context.Context, id int64) (*model.MenuItem, error)
}

// OrderFacade encapsulates checkout and the kitchen workflow.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, req model.OrderRequest) (*model.OrderReceipt, error)
	OrderByToken(ctx context.Context, token string) (*model.Order, error)
	Orders(ctx context.Context) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, token string, status model.OrderStatus) (*model.Order, error)
}

// StatsFacade provides dashboard figures.
type StatsFacade interface {
	Stats(ctx context.Context) (*model.OrderStats, error)
	DetailedStats(ctx context.Context) (*model.OrderStats, error)
}

// HealthChecker reports whether the service can reach its storage.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// CanteenFacade aggregates the full set of operations used across handlers.
type CanteenFacade interface {
	AuthFacade
	MenuFacade
	OrderFacade
	StatsFacade
	HealthChecker
}
