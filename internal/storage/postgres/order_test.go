package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"

	domainErrors "github.com/polkiloo/canteen/internal/domain/errors"
	"github.com/polkiloo/canteen/internal/domain/model"
)

var (
	orderColumnNames = []string{"id", "order_token", "payment_id", "total_amount", "status", "payment_method", "created_at", "updated_at"}
	lineColumnNames  = []string{"order_id", "item_id", "quantity", "price"}
	stockColumnNames = []string{"id", "name", "price", "quantity"}
)

func sampleNewOrder(total float64) model.NewOrder {
	return model.NewOrder{
		Token:     "123456",
		PaymentID: "PAY000001ABCD",
		Lines: []model.OrderLine{
			{ItemID: 2, Quantity: 1},
			{ItemID: 1, Quantity: 2},
			{ItemID: 2, Quantity: 1},
		},
		TotalAmount:   total,
		PaymentMethod: model.PaymentMethodCard,
	}
}

func expectStockLock(mock pgxmockv3.PgxPoolIface, rows *pgxmockv3.Rows) {
	mock.ExpectQuery("SELECT id, name, price, quantity FROM menu_items WHERE id = ANY").WithArgs([]int64{1, 2}).WillReturnRows(rows)
}

func TestOrderRepositoryCreate(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &orderRepository{storage: storage}

	now := time.Now()

	mock.ExpectBegin()
	expectStockLock(mock, pgxmockv3.NewRows(stockColumnNames).AddRow(int64(1), "Tea", 1.5, 5).AddRow(int64(2), "Bun", 2.0, 3))
	mock.ExpectQuery("INSERT INTO orders").WithArgs("123456", "PAY000001ABCD", 7.0, model.OrderStatusConfirmed, model.PaymentMethodCard).WillReturnRows(
		pgxmockv3.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(10), now, now))
	mock.ExpectExec("INSERT INTO order_items").WithArgs(int64(10), int64(2), 1, 2.0).WillReturnResult(pgxmockv3.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO order_items").WithArgs(int64(10), int64(1), 2, 1.5).WillReturnResult(pgxmockv3.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO order_items").WithArgs(int64(10), int64(2), 1, 2.0).WillReturnResult(pgxmockv3.NewResult("INSERT", 1))
	mock.ExpectExec("UPDATE menu_items SET quantity = quantity").WithArgs(2, int64(1)).WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE menu_items SET quantity = quantity").WithArgs(2, int64(2)).WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	order, err := repo.Create(context.Background(), sampleNewOrder(7.0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.ID != 10 || order.Status != model.OrderStatusConfirmed || len(order.Lines) != 3 || order.Lines[1].Price != 1.5 {
		t.Fatalf("unexpected order: %+v", order)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestOrderRepositoryCreateAcceptsRoundingDifference(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &orderRepository{storage: storage}

	now := time.Now()
	mock.ExpectBegin()
	expectStockLock(mock, pgxmockv3.NewRows(stockColumnNames).AddRow(int64(1), "Tea", 1.5, 5).AddRow(int64(2), "Bun", 2.0, 3))
	mock.ExpectQuery("INSERT INTO orders").WithArgs("123456", "PAY000001ABCD", 7.004, model.OrderStatusConfirmed, model.PaymentMethodCard).WillReturnRows(
		pgxmockv3.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(11), now, now))
	for i := 0; i < 3; i++ {
		mock.ExpectExec("INSERT INTO order_items").WithArgs(pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg()).WillReturnResult(pgxmockv3.NewResult("INSERT", 1))
	}
	mock.ExpectExec("UPDATE menu_items SET quantity = quantity").WithArgs(2, int64(1)).WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE menu_items SET quantity = quantity").WithArgs(2, int64(2)).WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	if _, err := repo.Create(context.Background(), sampleNewOrder(7.004)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestOrderRepositoryCreateFailures(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &orderRepository{storage: storage}

	now := time.Now()
	fullStock := func() *pgxmockv3.Rows {
		return pgxmockv3.NewRows(stockColumnNames).AddRow(int64(1), "Tea", 1.5, 5).AddRow(int64(2), "Bun", 2.0, 3)
	}

	t.Run("missing item", func(t *testing.T) {
		mock.ExpectBegin()
		expectStockLock(mock, pgxmockv3.NewRows(stockColumnNames).AddRow(int64(1), "Tea", 1.5, 5))
		mock.ExpectRollback()
		if _, err := repo.Create(context.Background(), sampleNewOrder(7.0)); !errors.Is(err, domainErrors.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("insufficient stock counts repeated lines", func(t *testing.T) {
		mock.ExpectBegin()
		expectStockLock(mock, pgxmockv3.NewRows(stockColumnNames).AddRow(int64(1), "Tea", 1.5, 5).AddRow(int64(2), "Bun", 2.0, 1))
		mock.ExpectRollback()
		_, err := repo.Create(context.Background(), sampleNewOrder(7.0))
		var stockErr *domainErrors.InsufficientStockError
		if !errors.As(err, &stockErr) || stockErr.Name != "Bun" || stockErr.Requested != 2 || stockErr.Available != 1 {
			t.Fatalf("expected insufficient stock for Bun, got %v", err)
		}
	})

	t.Run("total mismatch", func(t *testing.T) {
		mock.ExpectBegin()
		expectStockLock(mock, fullStock())
		mock.ExpectRollback()
		if _, err := repo.Create(context.Background(), sampleNewOrder(6.0)); !errors.Is(err, domainErrors.ErrTotalMismatch) {
			t.Fatalf("expected total mismatch, got %v", err)
		}
	})

	t.Run("token collision", func(t *testing.T) {
		mock.ExpectBegin()
		expectStockLock(mock, fullStock())
		mock.ExpectQuery("INSERT INTO orders").WithArgs("123456", "PAY000001ABCD", 7.0, model.OrderStatusConfirmed, model.PaymentMethodCard).WillReturnError(&pgconn.PgError{Code: "23505"})
		mock.ExpectRollback()
		if _, err := repo.Create(context.Background(), sampleNewOrder(7.0)); !errors.Is(err, domainErrors.ErrAlreadyExists) {
			t.Fatalf("expected already exists, got %v", err)
		}
	})

	t.Run("insert order error", func(t *testing.T) {
		mock.ExpectBegin()
		expectStockLock(mock, fullStock())
		mock.ExpectQuery("INSERT INTO orders").WithArgs("123456", "PAY000001ABCD", 7.0, model.OrderStatusConfirmed, model.PaymentMethodCard).WillReturnError(errors.New("insert"))
		mock.ExpectRollback()
		if _, err := repo.Create(context.Background(), sampleNewOrder(7.0)); err == nil || errors.Is(err, domainErrors.ErrAlreadyExists) {
			t.Fatalf("expected raw insert error, got %v", err)
		}
	})

	t.Run("insert line error", func(t *testing.T) {
		mock.ExpectBegin()
		expectStockLock(mock, fullStock())
		mock.ExpectQuery("INSERT INTO orders").WithArgs("123456", "PAY000001ABCD", 7.0, model.OrderStatusConfirmed, model.PaymentMethodCard).WillReturnRows(
			pgxmockv3.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(10), now, now))
		mock.ExpectExec("INSERT INTO order_items").WithArgs(int64(10), int64(2), 1, 2.0).WillReturnError(errors.New("line"))
		mock.ExpectRollback()
		if _, err := repo.Create(context.Background(), sampleNewOrder(7.0)); err == nil {
			t.Fatal("expected line error")
		}
	})

	t.Run("stock update error", func(t *testing.T) {
		mock.ExpectBegin()
		expectStockLock(mock, fullStock())
		mock.ExpectQuery("INSERT INTO orders").WithArgs("123456", "PAY000001ABCD", 7.0, model.OrderStatusConfirmed, model.PaymentMethodCard).WillReturnRows(
			pgxmockv3.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(10), now, now))
		for i := 0; i < 3; i++ {
			mock.ExpectExec("INSERT INTO order_items").WithArgs(pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg()).WillReturnResult(pgxmockv3.NewResult("INSERT", 1))
		}
		mock.ExpectExec("UPDATE menu_items SET quantity = quantity").WithArgs(2, int64(1)).WillReturnError(errors.New("stock"))
		mock.ExpectRollback()
		if _, err := repo.Create(context.Background(), sampleNewOrder(7.0)); err == nil {
			t.Fatal("expected stock update error")
		}
	})

	t.Run("lock query error", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id, name, price, quantity FROM menu_items WHERE id = ANY").WithArgs([]int64{1, 2}).WillReturnError(errors.New("lock"))
		mock.ExpectRollback()
		if _, err := repo.Create(context.Background(), sampleNewOrder(7.0)); err == nil {
			t.Fatal("expected lock error")
		}
	})

	t.Run("lock scan error", func(t *testing.T) {
		mock.ExpectBegin()
		expectStockLock(mock, pgxmockv3.NewRows(stockColumnNames).AddRow("bad", "Tea", 1.5, 5))
		mock.ExpectRollback()
		if _, err := repo.Create(context.Background(), sampleNewOrder(7.0)); err == nil {
			t.Fatal("expected scan error")
		}
	})

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestOrderRepositoryCreateRowsError(t *testing.T) {
	rows := &errorRows{err: errors.New("rows err")}
	tx := &rowsErrorTx{rows: rows}
	storage := &Storage{pool: &rowsErrorTxPool{tx: tx}}
	repo := &orderRepository{storage: storage}

	if _, err := repo.Create(context.Background(), sampleNewOrder(7.0)); err == nil || err.Error() != "rows err" {
		t.Fatalf("expected rows err, got %v", err)
	}
}

func TestOrderRepositoryGetByToken(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &orderRepository{storage: storage}

	now := time.Now()
	mock.ExpectQuery("SELECT id, order_token, payment_id, total_amount, status, payment_method, created_at, updated_at FROM orders WHERE order_token=").WithArgs("123456").WillReturnRows(
		pgxmockv3.NewRows(orderColumnNames).AddRow(int64(10), "123456", "CASH-000001", 3.0, model.OrderStatusPreparing, model.PaymentMethodCash, now, now))
	mock.ExpectQuery("SELECT order_id, item_id, quantity, price FROM order_items").WithArgs([]int64{10}).WillReturnRows(
		pgxmockv3.NewRows(lineColumnNames).AddRow(int64(10), int64(1), 2, 1.5))
	order, err := repo.GetByToken(context.Background(), "123456")
	if err != nil || order.Status != model.OrderStatusPreparing || len(order.Lines) != 1 || order.Lines[0].Quantity != 2 {
		t.Fatalf("unexpected order: %+v err=%v", order, err)
	}

	mock.ExpectQuery("SELECT id, order_token, payment_id, total_amount, status, payment_method, created_at, updated_at FROM orders WHERE order_token=").WithArgs("000000").WillReturnError(pgx.ErrNoRows)
	if _, err := repo.GetByToken(context.Background(), "000000"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectQuery("SELECT id, order_token, payment_id, total_amount, status, payment_method, created_at, updated_at FROM orders WHERE order_token=").WithArgs("123456").WillReturnRows(
		pgxmockv3.NewRows(orderColumnNames).AddRow(int64(10), "123456", "CASH-000001", 3.0, model.OrderStatusPreparing, model.PaymentMethodCash, now, now))
	mock.ExpectQuery("SELECT order_id, item_id, quantity, price FROM order_items").WithArgs([]int64{10}).WillReturnError(errors.New("lines"))
	if _, err := repo.GetByToken(context.Background(), "123456"); err == nil {
		t.Fatal("expected lines error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestOrderRepositoryList(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &orderRepository{storage: storage}

	now := time.Now()
	mock.ExpectQuery("SELECT id, order_token, payment_id, total_amount, status, payment_method, created_at, updated_at FROM orders ORDER BY").WillReturnRows(
		pgxmockv3.NewRows(orderColumnNames).
			AddRow(int64(11), "222222", "PAY000002WXYZ", 2.0, model.OrderStatusReady, model.PaymentMethodCard, now, now).
			AddRow(int64(10), "111111", "CASH-000001", 3.0, model.OrderStatusConfirmed, model.PaymentMethodCash, now, now),
	)
	mock.ExpectQuery("SELECT order_id, item_id, quantity, price FROM order_items").WithArgs([]int64{11, 10}).WillReturnRows(
		pgxmockv3.NewRows(lineColumnNames).
			AddRow(int64(10), int64(1), 2, 1.5).
			AddRow(int64(11), int64(2), 1, 2.0),
	)
	orders, err := repo.List(context.Background())
	if err != nil || len(orders) != 2 {
		t.Fatalf("unexpected orders: %v err=%v", orders, err)
	}
	if orders[0].Token != "222222" || len(orders[0].Lines) != 1 || orders[0].Lines[0].ItemID != 2 {
		t.Fatalf("unexpected first order: %+v", orders[0])
	}

	mock.ExpectQuery("SELECT id, order_token, payment_id, total_amount, status, payment_method, created_at, updated_at FROM orders ORDER BY").WillReturnRows(pgxmockv3.NewRows(orderColumnNames))
	orders, err = repo.List(context.Background())
	if err != nil || orders == nil || len(orders) != 0 {
		t.Fatalf("expected empty list, got %v err=%v", orders, err)
	}

	mock.ExpectQuery("SELECT id, order_token, payment_id, total_amount, status, payment_method, created_at, updated_at FROM orders ORDER BY").WillReturnError(errors.New("query"))
	if _, err := repo.List(context.Background()); err == nil {
		t.Fatal("expected error")
	}

	mock.ExpectQuery("SELECT id, order_token, payment_id, total_amount, status, payment_method, created_at, updated_at FROM orders ORDER BY").WillReturnRows(
		pgxmockv3.NewRows(orderColumnNames).AddRow("bad", "111111", "CASH-000001", 3.0, model.OrderStatusConfirmed, model.PaymentMethodCash, now, now))
	if _, err := repo.List(context.Background()); err == nil {
		t.Fatal("expected scan error")
	}

	mock.ExpectQuery("SELECT id, order_token, payment_id, total_amount, status, payment_method, created_at, updated_at FROM orders ORDER BY").WillReturnRows(
		pgxmockv3.NewRows(orderColumnNames).AddRow(int64(10), "111111", "CASH-000001", 3.0, model.OrderStatusConfirmed, model.PaymentMethodCash, now, now))
	mock.ExpectQuery("SELECT order_id, item_id, quantity, price FROM order_items").WithArgs([]int64{10}).WillReturnRows(
		pgxmockv3.NewRows(lineColumnNames).AddRow(int64(10), "bad", 2, 1.5))
	if _, err := repo.List(context.Background()); err == nil {
		t.Fatal("expected line scan error")
	}

	mock.ExpectQuery("SELECT id, order_token, payment_id, total_amount, status, payment_method, created_at, updated_at FROM orders ORDER BY").WillReturnRows(
		pgxmockv3.NewRows(orderColumnNames).AddRow(int64(10), "111111", "CASH-000001", 3.0, model.OrderStatusConfirmed, model.PaymentMethodCash, now, now))
	mock.ExpectQuery("SELECT order_id, item_id, quantity, price FROM order_items").WithArgs([]int64{10}).WillReturnRows(
		pgxmockv3.NewRows(lineColumnNames).AddRow(int64(10), int64(1), 2, 1.5).RowError(0, errors.New("row err")))
	if _, err := repo.List(context.Background()); err == nil || err.Error() != "row err" {
		t.Fatalf("expected row err, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestOrderRepositoryListRowsError(t *testing.T) {
	storage := &Storage{pool: &rowsErrorPool{rows: &errorRows{err: errors.New("rows err")}}}
	repo := &orderRepository{storage: storage}

	if _, err := repo.List(context.Background()); err == nil || err.Error() != "rows err" {
		t.Fatalf("expected rows err, got %v", err)
	}
}

func TestOrderRepositoryUpdateStatus(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &orderRepository{storage: storage}

	now := time.Now()
	mock.ExpectQuery("UPDATE orders SET status=").WithArgs(model.OrderStatusReady, "123456").WillReturnRows(
		pgxmockv3.NewRows(orderColumnNames).AddRow(int64(10), "123456", "CASH-000001", 3.0, model.OrderStatusReady, model.PaymentMethodCash, now, now))
	mock.ExpectQuery("SELECT order_id, item_id, quantity, price FROM order_items").WithArgs([]int64{10}).WillReturnRows(
		pgxmockv3.NewRows(lineColumnNames).AddRow(int64(10), int64(1), 2, 1.5))
	order, err := repo.UpdateStatus(context.Background(), "123456", model.OrderStatusReady)
	if err != nil || order.Status != model.OrderStatusReady || len(order.Lines) != 1 {
		t.Fatalf("unexpected order: %+v err=%v", order, err)
	}

	mock.ExpectQuery("UPDATE orders SET status=").WithArgs(model.OrderStatusCollected, "000000").WillReturnError(pgx.ErrNoRows)
	if _, err := repo.UpdateStatus(context.Background(), "000000", model.OrderStatusCollected); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectQuery("UPDATE orders SET status=").WithArgs(model.OrderStatusReady, "123456").WillReturnRows(
		pgxmockv3.NewRows(orderColumnNames).AddRow(int64(10), "123456", "CASH-000001", 3.0, model.OrderStatusReady, model.PaymentMethodCash, now, now))
	mock.ExpectQuery("SELECT order_id, item_id, quantity, price FROM order_items").WithArgs([]int64{10}).WillReturnError(errors.New("lines"))
	if _, err := repo.UpdateStatus(context.Background(), "123456", model.OrderStatusReady); err == nil {
		t.Fatal("expected lines error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestOrderRepositoryStats(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &orderRepository{storage: storage}

	since := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("COALESCE").WithArgs(since).WillReturnRows(
		pgxmockv3.NewRows([]string{"total", "pending", "ready", "revenue", "today"}).AddRow(int64(4), int64(2), int64(1), 20.5, 7.0))
	stats, err := repo.Stats(context.Background(), since)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalOrders != 4 || stats.PendingOrders != 2 || stats.ReadyOrders != 1 || stats.TotalRevenue != 20.5 || stats.TodayRevenue != 7.0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	mock.ExpectQuery("COALESCE").WithArgs(since).WillReturnError(errors.New("stats"))
	if _, err := repo.Stats(context.Background(), since); err == nil {
		t.Fatal("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}
