package postgres

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/polkiloo/canteen/internal/domain/errors"
	"github.com/polkiloo/canteen/internal/domain/model"
)

const (
	orderColumns = "id, order_token, payment_id, total_amount, status, payment_method, created_at, updated_at"

	// totalTolerance absorbs float rounding between client and server totals.
	totalTolerance = 0.005
)

type stockRow struct {
	name     string
	price    float64
	quantity int
}

func scanOrder(row rowScanner) (*model.Order, error) {
	var order model.Order
	if err := row.Scan(&order.ID, &order.Token, &order.PaymentID, &order.TotalAmount, &order.Status, &order.PaymentMethod, &order.CreatedAt, &order.UpdatedAt); err != nil {
		return nil, err
	}
	return &order, nil
}

// Create locks the referenced menu rows, checks stock and the client total,
// then stores the order with its lines and decrements stock.
func (r *orderRepository) Create(ctx context.Context, in model.NewOrder) (*model.Order, error) {
	requested := make(map[int64]int, len(in.Lines))
	for _, line := range in.Lines {
		requested[line.ItemID] += line.Quantity
	}
	ids := make([]int64, 0, len(requested))
	for id := range requested {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		stock, err := lockStock(ctx, tx, ids)
		if err != nil {
			return err
		}

		for _, id := range ids {
			row, ok := stock[id]
			if !ok {
				return fmt.Errorf("menu item %d: %w", id, domainErrors.ErrNotFound)
			}
			if requested[id] > row.quantity {
				return &domainErrors.InsufficientStockError{
					ItemID:    id,
					Name:      row.name,
					Requested: requested[id],
					Available: row.quantity,
				}
			}
		}

		lines := make([]model.OrderLine, len(in.Lines))
		var total float64
		for i, line := range in.Lines {
			line.Price = stock[line.ItemID].price
			total += line.Price * float64(line.Quantity)
			lines[i] = line
		}
		if math.Abs(total-in.TotalAmount) > totalTolerance {
			return fmt.Errorf("%w: expected %.2f, got %.2f", domainErrors.ErrTotalMismatch, total, in.TotalAmount)
		}

		created := &model.Order{
			Token:         in.Token,
			PaymentID:     in.PaymentID,
			Lines:         lines,
			TotalAmount:   in.TotalAmount,
			Status:        model.OrderStatusConfirmed,
			PaymentMethod: in.PaymentMethod,
		}
		err = tx.QueryRow(ctx,
			`INSERT INTO orders (order_token, payment_id, total_amount, status, payment_method) VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at`,
			created.Token, created.PaymentID, created.TotalAmount, created.Status, created.PaymentMethod,
		).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return domainErrors.ErrAlreadyExists
			}
			return err
		}

		for _, line := range lines {
			if _, err := tx.Exec(ctx,
				`INSERT INTO order_items (order_id, item_id, quantity, price) VALUES ($1, $2, $3, $4)`,
				created.ID, line.ItemID, line.Quantity, line.Price,
			); err != nil {
				return err
			}
		}

		for _, id := range ids {
			if _, err := tx.Exec(ctx,
				`UPDATE menu_items SET quantity = quantity - $1, updated_at=NOW() WHERE id=$2`,
				requested[id], id,
			); err != nil {
				return err
			}
		}

		order = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func lockStock(ctx context.Context, tx pgx.Tx, ids []int64) (map[int64]stockRow, error) {
	rows, err := tx.Query(ctx, `SELECT id, name, price, quantity FROM menu_items WHERE id = ANY($1) ORDER BY id FOR UPDATE`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stock := make(map[int64]stockRow, len(ids))
	for rows.Next() {
		var (
			id  int64
			row stockRow
		)
		if err := rows.Scan(&id, &row.name, &row.price, &row.quantity); err != nil {
			return nil, err
		}
		stock[id] = row
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return stock, nil
}

func (r *orderRepository) GetByToken(ctx context.Context, token string) (*model.Order, error) {
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE order_token=$1`, token))
	if err != nil {
		return nil, notFound(err)
	}

	lines, err := loadLines(ctx, r.storage.pool, []int64{order.ID})
	if err != nil {
		return nil, err
	}
	order.Lines = lines[order.ID]
	return order, nil
}

// List returns all orders newest first.
func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]model.Order, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
		ids = append(ids, order.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	lines, err := loadLines(ctx, r.storage.pool, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Lines = lines[orders[i].ID]
	}
	return orders, nil
}

func loadLines(ctx context.Context, q querier, orderIDs []int64) (map[int64][]model.OrderLine, error) {
	rows, err := q.Query(ctx, `SELECT order_id, item_id, quantity, price FROM order_items WHERE order_id = ANY($1) ORDER BY order_id, id`, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make(map[int64][]model.OrderLine, len(orderIDs))
	for rows.Next() {
		var (
			orderID int64
			line    model.OrderLine
		)
		if err := rows.Scan(&orderID, &line.ItemID, &line.Quantity, &line.Price); err != nil {
			return nil, err
		}
		lines[orderID] = append(lines[orderID], line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, token string, status model.OrderStatus) (*model.Order, error) {
	order, err := scanOrder(r.storage.pool.QueryRow(ctx,
		`UPDATE orders SET status=$1, updated_at=NOW() WHERE order_token=$2 RETURNING `+orderColumns,
		status, token,
	))
	if err != nil {
		return nil, notFound(err)
	}

	lines, err := loadLines(ctx, r.storage.pool, []int64{order.ID})
	if err != nil {
		return nil, err
	}
	order.Lines = lines[order.ID]
	return order, nil
}

func (r *orderRepository) Stats(ctx context.Context, since time.Time) (*model.OrderStats, error) {
	var stats model.OrderStats
	err := r.storage.pool.QueryRow(ctx, `SELECT
            COUNT(*),
            COUNT(*) FILTER (WHERE status IN ('confirmed', 'preparing')),
            COUNT(*) FILTER (WHERE status = 'ready'),
            COALESCE(SUM(total_amount), 0),
            COALESCE(SUM(total_amount) FILTER (WHERE created_at >= $1), 0)
        FROM orders`, since,
	).Scan(&stats.TotalOrders, &stats.PendingOrders, &stats.ReadyOrders, &stats.TotalRevenue, &stats.TodayRevenue)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
