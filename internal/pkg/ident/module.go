package ident

import "go.uber.org/fx"

// Module provides identifier generator via fx.
var Module = fx.Provide(func() Generator { return NewDefault() })
