package di

import (
	"github.com/polkiloo/canteen/internal/app"
	"github.com/polkiloo/canteen/internal/config"
	"github.com/polkiloo/canteen/internal/logger"
	"github.com/polkiloo/canteen/internal/pkg/auth"
	"github.com/polkiloo/canteen/internal/pkg/ident"
	"github.com/polkiloo/canteen/internal/server/http/router"
	"github.com/polkiloo/canteen/internal/storage/postgres"
	"github.com/polkiloo/canteen/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		ident.Module,
		postgres.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
