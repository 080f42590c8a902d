package config

import (
	"time"

	"go.uber.org/fx"
)

// Module exposes configuration loader and derived settings for fx graphs.
var Module = fx.Provide(
	Load,
	func(cfg *Config) *time.Location { return cfg.Location },
)
