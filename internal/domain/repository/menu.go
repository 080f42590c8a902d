package repository

import (
	"context"

	"github.com/polkiloo/canteen/internal/domain/model"
)

// MenuRepository describes persistence operations for the menu catalog.
type MenuRepository interface {
	Create(ctx context.Context, item model.MenuItem) (*model.MenuItem, error)
	GetByID(ctx context.Context, id int64) (*model.MenuItem, error)
	List(ctx context.Context) ([]model.MenuItem, error)
	Categories(ctx context.Context) ([]model.Category, error)
	Replace(ctx context.Context, id int64, fields model.ReplaceFields) (*model.MenuItem, error)
	AdjustQuantity(ctx context.Context, id int64, delta int) (*model.MenuItem, error)
	Delete(ctx context.Context, id int64) (*model.MenuItem, error)
}
