package app

import (
	"context"

	"github.com/polkiloo/canteen/internal/domain/model"
	"github.com/polkiloo/canteen/internal/usecase"
)

// HealthChecker reports whether backing storage is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type CanteenFacade struct {
	auth   *usecase.AuthUseCase
	menu   *usecase.MenuUseCase
	orders *usecase.OrderUseCase
	stats  *usecase.StatsUseCase
	health HealthChecker
}

func NewCanteenFacade(auth *usecase.AuthUseCase, menu *usecase.MenuUseCase, orders *usecase.OrderUseCase, stats *usecase.StatsUseCase, health HealthChecker) *CanteenFacade {
	return &CanteenFacade{auth: auth, menu: menu, orders: orders, stats: stats, health: health}
}

func (f *CanteenFacade) Login(ctx context.Context, username, password string) (string, error) {
	return f.auth.Login(ctx, username, password)
}

func (f *CanteenFacade) ParseToken(token string) (string, error) {
	return f.auth.ParseToken(token)
}

func (f *CanteenFacade) MenuItems(ctx context.Context) ([]model.MenuItem, error) {
	return f.menu.List(ctx)
}

func (f *CanteenFacade) MenuItem(ctx context.Context, id int64) (*model.MenuItem, error) {
	return f.menu.Get(ctx, id)
}

func (f *CanteenFacade) MenuCategories(ctx context.Context) ([]model.Category, error) {
	return f.menu.Categories(ctx)
}

func (f *CanteenFacade) AddMenuItem(ctx context.Context, item model.MenuItem) (*model.MenuItem, error) {
	return f.menu.Add(ctx, item)
}

func (f *CanteenFacade) UpdateMenuItem(ctx context.Context, id int64, update model.MenuItemUpdate) (*model.MenuItem, error) {
	return f.menu.Update(ctx, id, update)
}

func (f *CanteenFacade) DeleteMenuItem(ctx context.Context, id int64) (*model.MenuItem, error) {
	return f.menu.Delete(ctx, id)
}

func (f *CanteenFacade) BuyMenuItem(ctx context.Context, id int64) (*model.MenuItem, error) {
	return f.menu.Buy(ctx, id)
}

func (f *CanteenFacade) PlaceOrder(ctx context.Context, req model.OrderRequest) (*model.OrderReceipt, error) {
	return f.orders.Create(ctx, req)
}

func (f *CanteenFacade) OrderByToken(ctx context.Context, token string) (*model.Order, error) {
	return f.orders.GetByToken(ctx, token)
}

func (f *CanteenFacade) Orders(ctx context.Context) ([]model.Order, error) {
	return f.orders.List(ctx)
}

func (f *CanteenFacade) UpdateOrderStatus(ctx context.Context, token string, status model.OrderStatus) (*model.Order, error) {
	return f.orders.UpdateStatus(ctx, token, status)
}

func (f *CanteenFacade) Stats(ctx context.Context) (*model.OrderStats, error) {
	return f.stats.Summary(ctx)
}

func (f *CanteenFacade) DetailedStats(ctx context.Context) (*model.OrderStats, error) {
	return f.stats.Detailed(ctx)
}

func (f *CanteenFacade) HealthCheck(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
