package config_fx

import (
	"go.uber.org/fx"
	"smartinclusion/pkg/config"
)

var Module = fx.Provide(
	config.Load)
