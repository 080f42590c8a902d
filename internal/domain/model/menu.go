package model

import "time"

// MenuItem is a catalog entry with its stock on hand.
type MenuItem struct {
	ID        int64
	Name      string
	Category  string
	Price     float64
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Category is a distinct menu category with the number of items in it.
type Category struct {
	Name  string
	Count int
}

// MenuItemUpdate is either AdjustQuantity or ReplaceFields.
type MenuItemUpdate interface {
	isMenuItemUpdate()
}

// AdjustQuantity changes stock by a signed delta.
type AdjustQuantity struct {
	Delta int
}

// ReplaceFields overwrites the supplied fields only.
type ReplaceFields struct {
	Name     *string
	Category *string
	Price    *float64
	Quantity *int
}

func (AdjustQuantity) isMenuItemUpdate() {}
func (ReplaceFields) isMenuItemUpdate()  {}

// Empty reports whether no field is set.
func (r ReplaceFields) Empty() bool {
	return r.Name == nil && r.Category == nil && r.Price == nil && r.Quantity == nil
}
