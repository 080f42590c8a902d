package test

import (
	"context"
	"sort"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/canteen/internal/domain/errors"
	"github.com/polkiloo/canteen/internal/domain/model"
)

// MenuRepositoryStub keeps menu items in memory for tests.
type MenuRepositoryStub struct {
	mu    sync.Mutex
	Items map[int64]*model.MenuItem
	Next  int64
	Err   error
}

// NewMenuRepositoryStub constructs stub repository seeded with the given items.
func NewMenuRepositoryStub(items ...model.MenuItem) *MenuRepositoryStub {
	s := &MenuRepositoryStub{Items: make(map[int64]*model.MenuItem), Next: 1}
	for _, item := range items {
		item := item
		if item.ID == 0 {
			item.ID = s.Next
		}
		if item.ID >= s.Next {
			s.Next = item.ID + 1
		}
		s.Items[item.ID] = &item
	}
	return s
}

// Create stores item under the next identifier.
func (s *MenuRepositoryStub) Create(ctx context.Context, item model.MenuItem) (*model.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Items == nil {
		s.Items = make(map[int64]*model.MenuItem)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	item.ID = s.Next
	item.CreatedAt = time.Unix(0, 0)
	item.UpdatedAt = item.CreatedAt
	s.Next++
	s.Items[item.ID] = &item
	out := item
	return &out, nil
}

// GetByID returns a copy of the stored item or not found.
func (s *MenuRepositoryStub) GetByID(ctx context.Context, id int64) (*model.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	item, ok := s.Items[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	out := *item
	return &out, nil
}

// List returns items ordered by category, name and id.
func (s *MenuRepositoryStub) List(ctx context.Context) ([]model.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	items := make([]model.MenuItem, 0, len(s.Items))
	for _, item := range s.Items {
		items = append(items, *item)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Category != items[j].Category {
			return items[i].Category < items[j].Category
		}
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

// Categories groups stored items by category.
func (s *MenuRepositoryStub) Categories(ctx context.Context) ([]model.Category, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	categories := make([]model.Category, 0)
	for _, item := range items {
		if n := len(categories); n > 0 && categories[n-1].Name == item.Category {
			categories[n-1].Count++
			continue
		}
		categories = append(categories, model.Category{Name: item.Category, Count: 1})
	}
	return categories, nil
}

// Replace overwrites supplied fields.
func (s *MenuRepositoryStub) Replace(ctx context.Context, id int64, fields model.ReplaceFields) (*model.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	item, ok := s.Items[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if fields.Name != nil {
		item.Name = *fields.Name
	}
	if fields.Category != nil {
		item.Category = *fields.Category
	}
	if fields.Price != nil {
		item.Price = *fields.Price
	}
	if fields.Quantity != nil {
		item.Quantity = *fields.Quantity
	}
	out := *item
	return &out, nil
}

// AdjustQuantity applies delta unless stock would go negative.
func (s *MenuRepositoryStub) AdjustQuantity(ctx context.Context, id int64, delta int) (*model.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	item, ok := s.Items[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if item.Quantity+delta < 0 {
		return nil, &domainErrors.InsufficientStockError{ItemID: id, Name: item.Name, Requested: -delta, Available: item.Quantity}
	}
	item.Quantity += delta
	out := *item
	return &out, nil
}

// Delete removes stored item.
func (s *MenuRepositoryStub) Delete(ctx context.Context, id int64) (*model.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	item, ok := s.Items[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	delete(s.Items, id)
	return item, nil
}

// StatusUpdateCall stores information about UpdateStatus invocations.
type StatusUpdateCall struct {
	Token  string
	Status model.OrderStatus
}

// OrderRepositoryStub allows tests to customize behaviour.
type OrderRepositoryStub struct {
	CreateFn       func(context.Context, model.NewOrder) (*model.Order, error)
	GetByTokenFn   func(context.Context, string) (*model.Order, error)
	ListFn         func(context.Context) ([]model.Order, error)
	UpdateStatusFn func(context.Context, string, model.OrderStatus) (*model.Order, error)
	StatsFn        func(context.Context, time.Time) (*model.OrderStats, error)

	mu          sync.Mutex
	Created     []model.NewOrder
	Orders      []model.Order
	UpdateCalls []StatusUpdateCall
	StatsSince  []time.Time
}

// Create tracks invocations and returns configured responses.
func (s *OrderRepositoryStub) Create(ctx context.Context, order model.NewOrder) (*model.Order, error) {
	s.mu.Lock()
	s.Created = append(s.Created, order)
	s.mu.Unlock()
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	return &model.Order{
		ID:            1,
		Token:         order.Token,
		PaymentID:     order.PaymentID,
		Lines:         order.Lines,
		TotalAmount:   order.TotalAmount,
		Status:        model.OrderStatusConfirmed,
		PaymentMethod: order.PaymentMethod,
	}, nil
}

// GetByToken returns matched order either via override or stored slice.
func (s *OrderRepositoryStub) GetByToken(ctx context.Context, token string) (*model.Order, error) {
	if s.GetByTokenFn != nil {
		return s.GetByTokenFn(ctx, token)
	}
	for _, o := range s.Orders {
		if o.Token == token {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns orders from configured slice.
func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return s.Orders, nil
}

// UpdateStatus records update invocations.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, token string, status model.OrderStatus) (*model.Order, error) {
	s.mu.Lock()
	s.UpdateCalls = append(s.UpdateCalls, StatusUpdateCall{Token: token, Status: status})
	s.mu.Unlock()
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, token, status)
	}
	return &model.Order{Token: token, Status: status}, nil
}

// Stats records the requested day boundary.
func (s *OrderRepositoryStub) Stats(ctx context.Context, since time.Time) (*model.OrderStats, error) {
	s.mu.Lock()
	s.StatsSince = append(s.StatsSince, since)
	s.mu.Unlock()
	if s.StatsFn != nil {
		return s.StatsFn(ctx, since)
	}
	return &model.OrderStats{}, nil
}
