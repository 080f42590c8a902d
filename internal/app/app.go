package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/canteen/internal/config"
	"github.com/polkiloo/canteen/internal/storage/postgres"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewCanteenFacade,
		newHTTPServer,
		func(s *postgres.Storage) HealthChecker { return s },
	),
	fx.Invoke(registerLifecycle),
)

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:              p.Config.RunAddress,
		Handler:           p.Router,
		ReadHeaderTimeout: p.Config.ReadHeaderTimeout,
	}
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			p.Logger.Info("canteen api listening",
				slog.String("addr", p.Server.Addr),
				slog.String("token_strategy", p.Config.TokenStrategy),
				slog.Any("cors_origins", p.Config.CORSOrigins),
				slog.String("timezone", locationName(p.Config.Location)),
			)
			go serve(p)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return shutdown(ctx, p)
		},
	})
}

// serve blocks until the server is shut down. A listen failure stops the application.
func serve(p lifecycleParams) {
	err := p.Server.ListenAndServe()
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return
	}
	p.Logger.Error("canteen api stopped accepting orders",
		slog.String("addr", p.Server.Addr),
		slog.String("error", err.Error()),
	)
	_ = p.Shutdowner.Shutdown()
}

func shutdown(ctx context.Context, p lifecycleParams) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
		defer cancel()
	}

	if err := p.Server.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		p.Logger.Error("canteen api shutdown incomplete", slog.String("error", err.Error()))
		return err
	}
	p.Logger.Info("canteen api stopped", slog.Duration("shutdown_timeout", p.Config.ShutdownTimeout))
	return nil
}

func locationName(loc *time.Location) string {
	if loc == nil {
		return time.Local.String()
	}
	return loc.String()
}
