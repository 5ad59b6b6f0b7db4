package metrics

import "go.uber.org/fx"

// Module provides the metrics manager.
var Module = fx.Provide(func() *Manager { return NewManager() })
