package usecase

import (
	"log/slog"
	"time"

	"go.uber.org/fx"

	"github.com/polkiloo/canteen/internal/config"
	"github.com/polkiloo/canteen/internal/domain/model"
	"github.com/polkiloo/canteen/internal/domain/repository"
	pkgAuth "github.com/polkiloo/canteen/internal/pkg/auth"
	"github.com/polkiloo/canteen/internal/pkg/ident"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newAdmin,
	NewAuthUseCase,
	NewMenuUseCase,
	newOrderUseCase,
	newStatsUseCase,
)

// newAdmin hashes the configured password once at startup.
func newAdmin(cfg *config.Config, hasher pkgAuth.PasswordHasher) (*model.Admin, error) {
	hash, err := hasher.Hash(cfg.AdminPassword)
	if err != nil {
		return nil, err
	}
	return &model.Admin{Username: cfg.AdminUsername, PasswordHash: hash}, nil
}

type orderParams struct {
	fx.In

	Orders repository.OrderRepository
	IDs    ident.Generator
	Config *config.Config
	Logger *slog.Logger
}

func newOrderUseCase(p orderParams) *OrderUseCase {
	return NewOrderUseCase(p.Orders, p.IDs, p.Config.OrderTokenAttempts, p.Logger)
}

func newStatsUseCase(orders repository.OrderRepository, location *time.Location) *StatsUseCase {
	return NewStatsUseCase(orders, location, time.Now)
}
