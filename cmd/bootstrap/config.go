package bootstrap

import (
	"drop-arbiter/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule reads the environment once; LoadConfig fails startup on
// settings that do not validate.
var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
