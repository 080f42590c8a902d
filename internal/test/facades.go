package test

import (
	"context"
	"time"

	"github.com/polkiloo/canteen/internal/domain/model"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	LoginFn func(context.Context, string, string) (string, error)
	ParseFn func(string) (string, error)
}

// Login returns token for successful login scenarios.
func (s AuthFacadeStub) Login(ctx context.Context, username, password string) (string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, username, password)
	}
	return "token", nil
}

// ParseToken returns the admin subject.
func (s AuthFacadeStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return "admin", nil
}

// MenuFacadeStub provides controllable behaviour for menu endpoints.
type MenuFacadeStub struct {
	ItemsFn      func(context.Context) ([]model.MenuItem, error)
	ItemFn       func(context.Context, int64) (*model.MenuItem, error)
	CategoriesFn func(context.Context) ([]model.Category, error)
	AddFn        func(context.Context, model.MenuItem) (*model.MenuItem, error)
	UpdateFn     func(context.Context, int64, model.MenuItemUpdate) (*model.MenuItem, error)
	DeleteFn     func(context.Context, int64) (*model.MenuItem, error)
	BuyFn        func(context.Context, int64) (*model.MenuItem, error)
}

func sampleItem(id int64) *model.MenuItem {
	return &model.MenuItem{ID: id, Name: "Tea", Category: "Drinks", Price: 1.5, Quantity: 10, CreatedAt: time.Unix(0, 0), UpdatedAt: time.Unix(0, 0)}
}

// MenuItems returns configured catalog.
func (s MenuFacadeStub) MenuItems(ctx context.Context) ([]model.MenuItem, error) {
	if s.ItemsFn != nil {
		return s.ItemsFn(ctx)
	}
	return []model.MenuItem{*sampleItem(1)}, nil
}

// MenuItem returns a sample item for the id.
func (s MenuFacadeStub) MenuItem(ctx context.Context, id int64) (*model.MenuItem, error) {
	if s.ItemFn != nil {
		return s.ItemFn(ctx, id)
	}
	return sampleItem(id), nil
}

// MenuCategories returns configured categories.
func (s MenuFacadeStub) MenuCategories(ctx context.Context) ([]model.Category, error) {
	if s.CategoriesFn != nil {
		return s.CategoriesFn(ctx)
	}
	return []model.Category{{Name: "Drinks", Count: 1}}, nil
}

// AddMenuItem echoes the item with an identifier.
func (s MenuFacadeStub) AddMenuItem(ctx context.Context, item model.MenuItem) (*model.MenuItem, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, item)
	}
	item.ID = 1
	return &item, nil
}

// UpdateMenuItem returns sample item.
func (s MenuFacadeStub) UpdateMenuItem(ctx context.Context, id int64, update model.MenuItemUpdate) (*model.MenuItem, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, update)
	}
	return sampleItem(id), nil
}

// DeleteMenuItem returns sample item.
func (s MenuFacadeStub) DeleteMenuItem(ctx context.Context, id int64) (*model.MenuItem, error) {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return sampleItem(id), nil
}

// BuyMenuItem returns sample item.
func (s MenuFacadeStub) BuyMenuItem(ctx context.Context, id int64) (*model.MenuItem, error) {
	if s.BuyFn != nil {
		return s.BuyFn(ctx, id)
	}
	return sampleItem(id), nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceFn        func(context.Context, model.OrderRequest) (*model.OrderReceipt, error)
	ByTokenFn      func(context.Context, string) (*model.Order, error)
	OrdersFn       func(context.Context) ([]model.Order, error)
	UpdateStatusFn func(context.Context, string, model.OrderStatus) (*model.Order, error)
}

// PlaceOrder returns a fixed receipt.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, req model.OrderRequest) (*model.OrderReceipt, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, req)
	}
	return &model.OrderReceipt{Token: "123456", PaymentID: "PAY000001ABCD", TotalAmount: req.TotalAmount}, nil
}

// OrderByToken returns a confirmed order for the token.
func (s OrderFacadeStub) OrderByToken(ctx context.Context, token string) (*model.Order, error) {
	if s.ByTokenFn != nil {
		return s.ByTokenFn(ctx, token)
	}
	return &model.Order{Token: token, Status: model.OrderStatusConfirmed, PaymentMethod: model.PaymentMethodCard}, nil
}

// Orders returns predefined orders.
func (s OrderFacadeStub) Orders(ctx context.Context) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx)
	}
	return []model.Order{{Token: "123456", Status: model.OrderStatusConfirmed}}, nil
}

// UpdateOrderStatus returns order with new status.
func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, token string, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, token, status)
	}
	return &model.Order{Token: token, Status: status}, nil
}

// StatsFacadeStub returns dashboard figures.
type StatsFacadeStub struct {
	StatsFn    func(context.Context) (*model.OrderStats, error)
	DetailedFn func(context.Context) (*model.OrderStats, error)
}

// Stats returns configured summary.
func (s StatsFacadeStub) Stats(ctx context.Context) (*model.OrderStats, error) {
	if s.StatsFn != nil {
		return s.StatsFn(ctx)
	}
	return &model.OrderStats{TotalOrders: 3, PendingOrders: 1, ReadyOrders: 1, TotalRevenue: 12.5}, nil
}

// DetailedStats returns configured summary with today's revenue.
func (s StatsFacadeStub) DetailedStats(ctx context.Context) (*model.OrderStats, error) {
	if s.DetailedFn != nil {
		return s.DetailedFn(ctx)
	}
	return &model.OrderStats{TotalOrders: 3, PendingOrders: 1, ReadyOrders: 1, TotalRevenue: 12.5, TodayRevenue: 4}, nil
}

// HealthCheckerStub reports configured storage health.
type HealthCheckerStub struct {
	HealthErr error
}

// HealthCheck returns configured error.
func (s HealthCheckerStub) HealthCheck(context.Context) error {
	return s.HealthErr
}

// CanteenFacadeStub aggregates facade dependencies for HTTP layer tests.
type CanteenFacadeStub struct {
	AuthFacadeStub
	MenuFacadeStub
	OrderFacadeStub
	StatsFacadeStub
	HealthCheckerStub
}
