package usecase

import (
	"math"
	"strings"

	domainErrors "github.com/polkiloo/canteen/internal/domain/errors"
	"github.com/polkiloo/canteen/internal/domain/model"
)

const (
	orderTokenLength = 6
	// MaxQuantity matches the INTEGER stock and line columns.
	MaxQuantity = math.MaxInt32
)

// ValidateOrderToken checks that token is exactly six ASCII digits.
func ValidateOrderToken(token string) bool {
	if len(token) != orderTokenLength {
		return false
	}
	for i := 0; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			return false
		}
	}
	return true
}

// ValidateOrderRequest checks the cart before any storage work is done.
func ValidateOrderRequest(req model.OrderRequest) error {
	if len(req.Lines) == 0 {
		return domainErrors.Validation("order must contain at least one item")
	}
	for i, line := range req.Lines {
		if line.ItemID <= 0 {
			return domainErrors.Validation("item %d: invalid item id", i)
		}
		if line.Quantity <= 0 {
			return domainErrors.Validation("item %d: quantity must be positive", i)
		}
		if line.Quantity > MaxQuantity {
			return domainErrors.Validation("item %d: quantity exceeds %d", i, MaxQuantity)
		}
	}
	if !validAmount(req.TotalAmount) {
		return domainErrors.Validation("total amount must be a non-negative number")
	}
	if !req.PaymentMethod.Valid() {
		return domainErrors.Validation("unsupported payment method %q", req.PaymentMethod)
	}
	return nil
}

// ValidateMenuItem checks a new catalog entry.
func ValidateMenuItem(item model.MenuItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return domainErrors.Validation("name is required")
	}
	if strings.TrimSpace(item.Category) == "" {
		return domainErrors.Validation("category is required")
	}
	if !validAmount(item.Price) {
		return domainErrors.Validation("price must be a non-negative number")
	}
	if item.Quantity < 0 {
		return domainErrors.Validation("quantity must not be negative")
	}
	if item.Quantity > MaxQuantity {
		return domainErrors.Validation("quantity exceeds %d", MaxQuantity)
	}
	return nil
}

// ValidateMenuItemUpdate checks either update variant.
func ValidateMenuItemUpdate(update model.MenuItemUpdate) error {
	switch u := update.(type) {
	case model.AdjustQuantity:
		if u.Delta == 0 {
			return domainErrors.Validation("quantity change must not be zero")
		}
		if u.Delta > MaxQuantity || u.Delta < -MaxQuantity {
			return domainErrors.Validation("quantity change exceeds %d", MaxQuantity)
		}
	case model.ReplaceFields:
		if u.Empty() {
			return domainErrors.Validation("no fields to update")
		}
		if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
			return domainErrors.Validation("name must not be blank")
		}
		if u.Category != nil && strings.TrimSpace(*u.Category) == "" {
			return domainErrors.Validation("category must not be blank")
		}
		if u.Price != nil && !validAmount(*u.Price) {
			return domainErrors.Validation("price must be a non-negative number")
		}
		if u.Quantity != nil && *u.Quantity < 0 {
			return domainErrors.Validation("quantity must not be negative")
		}
		if u.Quantity != nil && *u.Quantity > MaxQuantity {
			return domainErrors.Validation("quantity exceeds %d", MaxQuantity)
		}
	default:
		return domainErrors.Validation("unsupported update")
	}
	return nil
}

func validAmount(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
