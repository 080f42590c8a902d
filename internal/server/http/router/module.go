package router

import (
	"go.uber.org/fx"

	"github.com/polkiloo/canteen/internal/app"
	"github.com/polkiloo/canteen/internal/server/http/handlers"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Options(
	fx.Provide(
		func(f *app.CanteenFacade) handlers.CanteenFacade { return f },
		Setup,
	),
)
