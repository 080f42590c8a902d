package auth

import (
	"log/slog"

	"github.com/polkiloo/canteen/internal/config"
	"go.uber.org/fx"
)

// Module provides the admin password hasher and the configured token strategy.
var Module = fx.Options(
	fx.Provide(newPasswordHasher),
	fx.Provide(newTokenStrategy),
)

func newPasswordHasher() PasswordHasher {
	return NewBcryptHasher(0)
}

type strategyParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newTokenStrategy(p strategyParams) Strategy {
	opts := Options{TTL: p.Config.TokenTTL}
	var strategy Strategy
	if p.Config.TokenStrategy == "hmac" {
		strategy = NewHMACStrategy(p.Config.TokenSecret, opts)
	} else {
		strategy = NewJWTStrategy(p.Config.TokenSecret, opts)
	}
	p.Logger.Info("admin token strategy selected",
		slog.String("strategy", strategy.Name()),
		slog.Duration("ttl", opts.ttl()),
	)
	return strategy
}
