package model

import "time"

// OrderStatus describes preparation lifecycle shown on the kitchen board.
type OrderStatus string

const (
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCollected OrderStatus = "collected"
)

// Valid reports whether status is one of the known values.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusConfirmed, OrderStatusPreparing, OrderStatusReady, OrderStatusCollected:
		return true
	}
	return false
}

// PaymentMethod is how the customer settles the order.
type PaymentMethod string

const (
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodCash PaymentMethod = "cash"
)

// Valid reports whether method is supported.
func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodCard || m == PaymentMethodCash
}

// OrderLine is a single menu item entry of an order. Price is the catalog price at order time.
type OrderLine struct {
	ItemID   int64
	Quantity int
	Price    float64
}

// Order describes a placed canteen order.
type Order struct {
	ID            int64
	Token         string
	PaymentID     string
	Lines         []OrderLine
	TotalAmount   float64
	Status        OrderStatus
	PaymentMethod PaymentMethod
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderRequest is the customer's cart as submitted for checkout.
type OrderRequest struct {
	Lines         []OrderLine
	TotalAmount   float64
	PaymentMethod PaymentMethod
}

// NewOrder carries everything the store needs to persist an order atomically.
type NewOrder struct {
	Token         string
	PaymentID     string
	Lines         []OrderLine
	TotalAmount   float64
	PaymentMethod PaymentMethod
}

// OrderReceipt is what the customer gets back after checkout.
type OrderReceipt struct {
	Token       string
	PaymentID   string
	TotalAmount float64
}
