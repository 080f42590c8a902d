package app

import (
	"context"
	"errors"
	"testing"
	"time"

	domainErrors "github.com/polkiloo/canteen/internal/domain/errors"
	"github.com/polkiloo/canteen/internal/domain/model"
	testhelpers "github.com/polkiloo/canteen/internal/test"
	"github.com/polkiloo/canteen/internal/usecase"
)

type facadeDeps struct {
	menu   *testhelpers.MenuRepositoryStub
	orders *testhelpers.OrderRepositoryStub
	health *testhelpers.HealthCheckerStub
}

func newFacade() (*CanteenFacade, facadeDeps) {
	logger := testhelpers.DiscardLogger()
	admin := &model.Admin{Username: "admin", PasswordHash: "hash:secret"}
	authUC := usecase.NewAuthUseCase(admin, testhelpers.HasherStub{}, testhelpers.StrategyStub{})

	menuRepo := testhelpers.NewMenuRepositoryStub(model.MenuItem{ID: 1, Name: "Tea", Category: "Drinks", Price: 1.5, Quantity: 2})
	menuUC := usecase.NewMenuUseCase(menuRepo, logger)

	orderRepo := &testhelpers.OrderRepositoryStub{}
	orderUC := usecase.NewOrderUseCase(orderRepo, &testhelpers.GeneratorStub{Tokens: []string{"555555"}}, 3, logger)

	statsUC := usecase.NewStatsUseCase(orderRepo, time.UTC, nil)
	health := &testhelpers.HealthCheckerStub{}

	facade := NewCanteenFacade(authUC, menuUC, orderUC, statsUC, health)
	return facade, facadeDeps{menu: menuRepo, orders: orderRepo, health: health}
}

func TestCanteenFacadeAuth(t *testing.T) {
	facade, _ := newFacade()

	token, err := facade.Login(context.Background(), "admin", "secret")
	if err != nil || token != "token-admin" {
		t.Fatalf("unexpected login result: %q err=%v", token, err)
	}

	subject, err := facade.ParseToken(token)
	if err != nil || subject != "admin" {
		t.Fatalf("unexpected subject: %q err=%v", subject, err)
	}

	if _, err := facade.Login(context.Background(), "admin", "nope"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestCanteenFacadeMenu(t *testing.T) {
	facade, deps := newFacade()
	ctx := context.Background()

	added, err := facade.AddMenuItem(ctx, model.MenuItem{Name: "Bun", Category: "Bakery", Price: 2, Quantity: 1})
	if err != nil || added.ID == 0 {
		t.Fatalf("unexpected add result: %+v err=%v", added, err)
	}

	items, err := facade.MenuItems(ctx)
	if err != nil || len(items) != 2 {
		t.Fatalf("unexpected items: %v err=%v", items, err)
	}

	categories, err := facade.MenuCategories(ctx)
	if err != nil || len(categories) != 2 {
		t.Fatalf("unexpected categories: %v err=%v", categories, err)
	}

	item, err := facade.UpdateMenuItem(ctx, 1, model.AdjustQuantity{Delta: 3})
	if err != nil || item.Quantity != 5 {
		t.Fatalf("unexpected update result: %+v err=%v", item, err)
	}

	if got, err := facade.MenuItem(ctx, 1); err != nil || got.Quantity != 5 {
		t.Fatalf("unexpected item: %+v err=%v", got, err)
	}

	item, err = facade.BuyMenuItem(ctx, 1)
	if err != nil || item.Quantity != 4 {
		t.Fatalf("unexpected buy result: %+v err=%v", item, err)
	}

	if _, err := facade.DeleteMenuItem(ctx, added.ID); err != nil {
		t.Fatalf("unexpected delete error: %v", err)
	}
	if len(deps.menu.Items) != 1 {
		t.Fatalf("expected one item left, got %d", len(deps.menu.Items))
	}
}

func TestCanteenFacadeOrders(t *testing.T) {
	facade, deps := newFacade()
	ctx := context.Background()

	receipt, err := facade.PlaceOrder(ctx, model.OrderRequest{
		Lines:       []model.OrderLine{{ItemID: 1, Quantity: 1}},
		TotalAmount: 1.5,
	})
	if err != nil || receipt.Token != "555555" {
		t.Fatalf("unexpected receipt: %+v err=%v", receipt, err)
	}

	deps.orders.Orders = []model.Order{{Token: "555555", Status: model.OrderStatusConfirmed}}
	order, err := facade.OrderByToken(ctx, "555555")
	if err != nil || order.Status != model.OrderStatusConfirmed {
		t.Fatalf("unexpected order: %+v err=%v", order, err)
	}

	orders, err := facade.Orders(ctx)
	if err != nil || len(orders) != 1 {
		t.Fatalf("unexpected orders: %v err=%v", orders, err)
	}

	order, err = facade.UpdateOrderStatus(ctx, "555555", model.OrderStatusReady)
	if err != nil || order.Status != model.OrderStatusReady {
		t.Fatalf("unexpected updated order: %+v err=%v", order, err)
	}
}

func TestCanteenFacadeStatsAndHealth(t *testing.T) {
	facade, deps := newFacade()
	ctx := context.Background()

	deps.orders.StatsFn = func(context.Context, time.Time) (*model.OrderStats, error) {
		return &model.OrderStats{TotalOrders: 2, TotalRevenue: 10, TodayRevenue: 4}, nil
	}

	summary, err := facade.Stats(ctx)
	if err != nil || summary.TotalOrders != 2 || summary.TodayRevenue != 0 {
		t.Fatalf("unexpected summary: %+v err=%v", summary, err)
	}

	detailed, err := facade.DetailedStats(ctx)
	if err != nil || detailed.TodayRevenue != 4 {
		t.Fatalf("unexpected detailed stats: %+v err=%v", detailed, err)
	}

	if err := facade.HealthCheck(ctx); err != nil {
		t.Fatalf("unexpected health error: %v", err)
	}
	deps.health.HealthErr = errors.New("down")
	if err := facade.HealthCheck(ctx); err == nil {
		t.Fatal("expected health error")
	}
}
