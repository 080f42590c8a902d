package dto

import "time"

// OrderLineRequest is one cart entry.
type OrderLineRequest struct {
	ItemID   int64 `json:"itemId"`
	Quantity int   `json:"quantity"`
}

// CreateOrderRequest is the payload of POST /orders/create.
type CreateOrderRequest struct {
	Items         []OrderLineRequest `json:"items"`
	TotalAmount   float64            `json:"totalAmount"`
	PaymentMethod string             `json:"paymentMethod"`
}

// CreateOrderResponse is returned to the customer after checkout.
type CreateOrderResponse struct {
	Success     bool    `json:"success"`
	OrderToken  string  `json:"orderToken"`
	PaymentID   string  `json:"paymentId"`
	TotalAmount float64 `json:"totalAmount"`
	Message     string  `json:"message"`
}

// OrderLineResponse is a stored order line.
type OrderLineResponse struct {
	ItemID   int64   `json:"itemId"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// OrderResponse represents an order with its lines.
type OrderResponse struct {
	ID            int64               `json:"id"`
	OrderToken    string              `json:"orderToken"`
	PaymentID     string              `json:"paymentId"`
	Items         []OrderLineResponse `json:"items"`
	TotalAmount   float64             `json:"totalAmount"`
	Status        string              `json:"status"`
	PaymentMethod string              `json:"paymentMethod"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

// StatusUpdateRequest is the payload of PUT /orders/:token/status.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// OrderMessage wraps an updated order with a human readable message.
type OrderMessage struct {
	Message string        `json:"message"`
	Order   OrderResponse `json:"order"`
}
