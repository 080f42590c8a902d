package dto

import "time"

// MenuItemRequest is the payload of POST /menu/add.
type MenuItemRequest struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// QuantityChange is the body of the $inc operator.
type QuantityChange struct {
	Quantity *int `json:"quantity"`
}

// MenuItemUpdateRequest accepts either {"$inc":{"quantity":n}} or a set of fields to replace.
type MenuItemUpdateRequest struct {
	Inc      *QuantityChange `json:"$inc"`
	Name     *string         `json:"name"`
	Category *string         `json:"category"`
	Price    *float64        `json:"price"`
	Quantity *int            `json:"quantity"`
}

// MenuItemResponse is a catalog entry as shown to clients.
type MenuItemResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MenuItemMessage wraps a changed item with a human readable message.
type MenuItemMessage struct {
	Message string           `json:"message"`
	Item    MenuItemResponse `json:"item"`
}

// CategoryResponse is a distinct category with its item count.
type CategoryResponse struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
