package realtime_fx

import (
	"context"

	"go.uber.org/fx"
	"smartinclusion/internal/realtime"
)

var Module = fx.Options(
	fx.Provide(provideHub),
	fx.Invoke(registerHubLifecycle))

func provideHub() *realtime.Hub {
	return realtime.NewHub()
}

func registerHubLifecycle(lc fx.Lifecycle, hub *realtime.Hub) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			hub.Close()
			return nil
		},
	})
}
