package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/canteen/internal/config"
	"github.com/polkiloo/canteen/internal/domain/repository"
)

// Module wires PostgreSQL storage, the catalog and order repositories, and pool lifecycle.
var Module = fx.Options(
	fx.Provide(
		newStorage,
		fx.Annotate(func(s *Storage) *Storage { return s }, fx.As(new(repository.Factory))),
		func(f repository.Factory) repository.MenuRepository { return f.Menu() },
		func(f repository.Factory) repository.OrderRepository { return f.Orders() },
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

// registerLifecycle refuses to start without a reachable database and closes the pool on stop.
func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := storage.HealthCheck(ctx); err != nil {
				return fmt.Errorf("database unreachable: %w", err)
			}
			return nil
		},
		OnStop: func(context.Context) error {
			storage.Close()
			storage.Logger().Info("database pool closed")
			return nil
		},
	})
}
