package errors

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrOutOfStock         = errors.New("out of stock")
	ErrTotalMismatch      = errors.New("total amount does not match order lines")
	ErrTokenExhausted     = errors.New("could not allocate unique order token")
)

// InsufficientStockError reports which menu item could not cover the requested quantity.
type InsufficientStockError struct {
	ItemID    int64
	Name      string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q: requested %d, available %d", e.Name, e.Requested, e.Available)
}

// Is makes errors.Is(err, ErrInsufficientStock) match.
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// Validation wraps a human readable reason into ErrValidation.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
