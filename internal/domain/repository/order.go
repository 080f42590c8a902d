package repository

import (
	"context"
	"time"

	"github.com/polkiloo/canteen/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	// Create validates stock, decrements it and stores the order in one transaction.
	Create(ctx context.Context, order model.NewOrder) (*model.Order, error)
	GetByToken(ctx context.Context, token string) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	UpdateStatus(ctx context.Context, token string, status model.OrderStatus) (*model.Order, error)
	// Stats aggregates all orders; TodayRevenue counts orders created at or after since.
	Stats(ctx context.Context, since time.Time) (*model.OrderStats, error)
}
