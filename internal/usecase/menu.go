package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	domainErrors "github.com/polkiloo/canteen/internal/domain/errors"
	"github.com/polkiloo/canteen/internal/domain/model"
	"github.com/polkiloo/canteen/internal/domain/repository"
)

// MenuUseCase manages the catalog and its stock.
type MenuUseCase struct {
	menu   repository.MenuRepository
	logger *slog.Logger
}

// NewMenuUseCase constructs MenuUseCase.
func NewMenuUseCase(menu repository.MenuRepository, logger *slog.Logger) *MenuUseCase {
	return &MenuUseCase{menu: menu, logger: logger}
}

// Add validates and stores a new menu item.
func (u *MenuUseCase) Add(ctx context.Context, item model.MenuItem) (*model.MenuItem, error) {
	item.Name = strings.TrimSpace(item.Name)
	item.Category = strings.TrimSpace(item.Category)
	if err := ValidateMenuItem(item); err != nil {
		return nil, err
	}

	created, err := u.menu.Create(ctx, item)
	if err != nil {
		return nil, err
	}
	u.logger.Info("menu item added", slog.Int64("item_id", created.ID), slog.String("name", created.Name))
	return created, nil
}

// List returns the whole catalog.
func (u *MenuUseCase) List(ctx context.Context) ([]model.MenuItem, error) {
	return u.menu.List(ctx)
}

// Get returns a single catalog entry.
func (u *MenuUseCase) Get(ctx context.Context, id int64) (*model.MenuItem, error) {
	return u.menu.GetByID(ctx, id)
}

// Categories returns distinct categories with item counts.
func (u *MenuUseCase) Categories(ctx context.Context) ([]model.Category, error) {
	return u.menu.Categories(ctx)
}

// Update applies either a relative stock change or a field replacement.
func (u *MenuUseCase) Update(ctx context.Context, id int64, update model.MenuItemUpdate) (*model.MenuItem, error) {
	if err := ValidateMenuItemUpdate(update); err != nil {
		return nil, err
	}

	var (
		item *model.MenuItem
		err  error
	)
	switch upd := update.(type) {
	case model.AdjustQuantity:
		item, err = u.menu.AdjustQuantity(ctx, id, upd.Delta)
	case model.ReplaceFields:
		upd = trimFields(upd)
		item, err = u.menu.Replace(ctx, id, upd)
	}
	if err != nil {
		return nil, err
	}
	u.logger.Info("menu item updated", slog.Int64("item_id", item.ID), slog.Int("quantity", item.Quantity))
	return item, nil
}

// Buy takes exactly one unit off the shelf.
func (u *MenuUseCase) Buy(ctx context.Context, id int64) (*model.MenuItem, error) {
	item, err := u.menu.AdjustQuantity(ctx, id, -1)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInsufficientStock) {
			return nil, domainErrors.ErrOutOfStock
		}
		return nil, err
	}
	return item, nil
}

// Delete removes item from the catalog. Past orders keep their lines.
func (u *MenuUseCase) Delete(ctx context.Context, id int64) (*model.MenuItem, error) {
	item, err := u.menu.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	u.logger.Info("menu item deleted", slog.Int64("item_id", item.ID))
	return item, nil
}

func trimFields(f model.ReplaceFields) model.ReplaceFields {
	if f.Name != nil {
		name := strings.TrimSpace(*f.Name)
		f.Name = &name
	}
	if f.Category != nil {
		category := strings.TrimSpace(*f.Category)
		f.Category = &category
	}
	return f
}
