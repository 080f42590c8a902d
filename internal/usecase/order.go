package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	domainErrors "github.com/polkiloo/canteen/internal/domain/errors"
	"github.com/polkiloo/canteen/internal/domain/model"
	"github.com/polkiloo/canteen/internal/domain/repository"
	"github.com/polkiloo/canteen/internal/pkg/ident"
)

const defaultTokenAttempts = 5

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders   repository.OrderRepository
	ids      ident.Generator
	attempts int
	logger   *slog.Logger
}

// NewOrderUseCase constructs OrderUseCase. Non-positive attempts fall back to the default.
func NewOrderUseCase(orders repository.OrderRepository, ids ident.Generator, attempts int, logger *slog.Logger) *OrderUseCase {
	if attempts <= 0 {
		attempts = defaultTokenAttempts
	}
	return &OrderUseCase{orders: orders, ids: ids, attempts: attempts, logger: logger}
}

// Create places the order. A token collision regenerates identifiers and retries
// the whole transaction; exhausting the attempts yields ErrTokenExhausted.
func (u *OrderUseCase) Create(ctx context.Context, req model.OrderRequest) (*model.OrderReceipt, error) {
	if req.PaymentMethod == "" {
		req.PaymentMethod = model.PaymentMethodCard
	}
	if err := ValidateOrderRequest(req); err != nil {
		return nil, err
	}

	for attempt := 1; attempt <= u.attempts; attempt++ {
		order, err := u.orders.Create(ctx, model.NewOrder{
			Token:         u.ids.OrderToken(),
			PaymentID:     u.ids.PaymentID(req.PaymentMethod),
			Lines:         req.Lines,
			TotalAmount:   req.TotalAmount,
			PaymentMethod: req.PaymentMethod,
		})
		if err == nil {
			u.logger.Info("order created",
				slog.String("token", order.Token),
				slog.Float64("total", order.TotalAmount),
				slog.Int("lines", len(order.Lines)),
			)
			return &model.OrderReceipt{
				Token:       order.Token,
				PaymentID:   order.PaymentID,
				TotalAmount: order.TotalAmount,
			}, nil
		}
		if !errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, err
		}
		u.logger.Warn("order token collision", slog.Int("attempt", attempt))
	}

	return nil, domainErrors.ErrTokenExhausted
}

// GetByToken returns a single order with its lines.
func (u *OrderUseCase) GetByToken(ctx context.Context, token string) (*model.Order, error) {
	if !ValidateOrderToken(token) {
		return nil, domainErrors.ErrNotFound
	}
	return u.orders.GetByToken(ctx, token)
}

// List returns all orders newest first.
func (u *OrderUseCase) List(ctx context.Context) ([]model.Order, error) {
	return u.orders.List(ctx)
}

// UpdateStatus moves order to any of the known statuses.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, token string, status model.OrderStatus) (*model.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %w %q", domainErrors.ErrValidation, domainErrors.ErrInvalidStatus, status)
	}
	if !ValidateOrderToken(token) {
		return nil, domainErrors.ErrNotFound
	}

	order, err := u.orders.UpdateStatus(ctx, token, status)
	if err != nil {
		return nil, err
	}
	u.logger.Info("order status updated", slog.String("token", token), slog.String("status", string(status)))
	return order, nil
}
