package postgres

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/canteen/internal/domain/errors"
	"github.com/polkiloo/canteen/internal/domain/model"
)

const menuItemColumns = "id, name, category, price, quantity, created_at, updated_at"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMenuItem(row rowScanner) (*model.MenuItem, error) {
	var item model.MenuItem
	if err := row.Scan(&item.ID, &item.Name, &item.Category, &item.Price, &item.Quantity, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) Create(ctx context.Context, item model.MenuItem) (*model.MenuItem, error) {
	row := r.storage.pool.QueryRow(ctx,
		`INSERT INTO menu_items (name, category, price, quantity) VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at`,
		item.Name, item.Category, item.Price, item.Quantity,
	)
	if err := row.Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) GetByID(ctx context.Context, id int64) (*model.MenuItem, error) {
	row := r.storage.pool.QueryRow(ctx, `SELECT `+menuItemColumns+` FROM menu_items WHERE id=$1`, id)
	item, err := scanMenuItem(row)
	if err != nil {
		return nil, notFound(err)
	}
	return item, nil
}

func (r *menuRepository) List(ctx context.Context) ([]model.MenuItem, error) {
	rows, err := r.storage.pool.Query(ctx, `SELECT `+menuItemColumns+` FROM menu_items ORDER BY category, name, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.MenuItem, 0)
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *menuRepository) Categories(ctx context.Context) ([]model.Category, error) {
	rows, err := r.storage.pool.Query(ctx, `SELECT category, COUNT(*) FROM menu_items GROUP BY category ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]model.Category, 0)
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.Name, &c.Count); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return categories, nil
}

// Replace overwrites the provided fields and leaves the rest untouched.
func (r *menuRepository) Replace(ctx context.Context, id int64, fields model.ReplaceFields) (*model.MenuItem, error) {
	if fields.Empty() {
		return nil, domainErrors.Validation("no fields to update")
	}

	var (
		sets []string
		args []any
	)
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s=$%d", column, len(args)))
	}
	if fields.Name != nil {
		set("name", *fields.Name)
	}
	if fields.Category != nil {
		set("category", *fields.Category)
	}
	if fields.Price != nil {
		set("price", *fields.Price)
	}
	if fields.Quantity != nil {
		set("quantity", *fields.Quantity)
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE menu_items SET %s, updated_at=NOW() WHERE id=$%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), menuItemColumns)

	item, err := scanMenuItem(r.storage.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, notFound(err)
	}
	return item, nil
}

// AdjustQuantity applies a relative stock change under a row lock.
func (r *menuRepository) AdjustQuantity(ctx context.Context, id int64, delta int) (*model.MenuItem, error) {
	var item *model.MenuItem
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		current, err := scanMenuItem(tx.QueryRow(ctx, `SELECT `+menuItemColumns+` FROM menu_items WHERE id=$1 FOR UPDATE`, id))
		if err != nil {
			return notFound(err)
		}

		if delta > math.MaxInt32-current.Quantity || delta < -math.MaxInt32 {
			return domainErrors.Validation("quantity would exceed %d", math.MaxInt32)
		}
		next := current.Quantity + delta
		if next < 0 {
			return &domainErrors.InsufficientStockError{
				ItemID:    current.ID,
				Name:      current.Name,
				Requested: -delta,
				Available: current.Quantity,
			}
		}

		if err := tx.QueryRow(ctx,
			`UPDATE menu_items SET quantity=$1, updated_at=NOW() WHERE id=$2 RETURNING updated_at`,
			next, id,
		).Scan(&current.UpdatedAt); err != nil {
			return err
		}

		current.Quantity = next
		item = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *menuRepository) Delete(ctx context.Context, id int64) (*model.MenuItem, error) {
	item, err := scanMenuItem(r.storage.pool.QueryRow(ctx, `DELETE FROM menu_items WHERE id=$1 RETURNING `+menuItemColumns, id))
	if err != nil {
		return nil, notFound(err)
	}
	return item, nil
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domainErrors.ErrNotFound
	}
	return err
}
