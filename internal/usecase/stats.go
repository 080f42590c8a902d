package usecase

import (
	"context"
	"time"

	"github.com/polkiloo/canteen/internal/domain/model"
	"github.com/polkiloo/canteen/internal/domain/repository"
)

// StatsUseCase builds dashboard figures.
type StatsUseCase struct {
	orders   repository.OrderRepository
	location *time.Location
	now      func() time.Time
}

// NewStatsUseCase constructs StatsUseCase. Nil location means time.Local, nil clock means time.Now.
func NewStatsUseCase(orders repository.OrderRepository, location *time.Location, now func() time.Time) *StatsUseCase {
	if location == nil {
		location = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &StatsUseCase{orders: orders, location: location, now: now}
}

// Summary returns totals without today's revenue.
func (u *StatsUseCase) Summary(ctx context.Context) (*model.OrderStats, error) {
	stats, err := u.orders.Stats(ctx, u.startOfDay())
	if err != nil {
		return nil, err
	}
	stats.TodayRevenue = 0
	return stats, nil
}

// Detailed returns totals together with revenue since local midnight.
func (u *StatsUseCase) Detailed(ctx context.Context) (*model.OrderStats, error) {
	return u.orders.Stats(ctx, u.startOfDay())
}

func (u *StatsUseCase) startOfDay() time.Time {
	now := u.now().In(u.location)
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, u.location)
}
