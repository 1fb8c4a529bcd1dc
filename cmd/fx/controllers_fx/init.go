package controllers_fx

import (
	"go.uber.org/fx"
	"smartinclusion/internal/api/controllers"
	"smartinclusion/internal/realtime"
	"smartinclusion/internal/services"
	"smartinclusion/pkg/config"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewLocationController),
	fx.Provide(controllers.NewSchemeController),
	fx.Provide(provideRealtimeController))

func provideRealtimeController(hub *realtime.Hub, accountService services.AccountServiceInterface, cfg *config.Config) *controllers.RealtimeController {
	return controllers.NewRealtimeController(hub, accountService, cfg.JWTSecret, cfg.AllowedOrigin)
}
