package components

import (
	"context"

	"drop-arbiter/internal/handler"
	"drop-arbiter/internal/handler/api"
	"drop-arbiter/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewDropHandler,
		api.NewClaimHandler,
		api.NewStatsHandler,
		api.NewEventsHandler,
		middleware.NewAuthMiddleware,
		middleware.NewIdempotencyMiddleware,
		middleware.NewRateLimitMiddleware,
		newHandlers,
		newMiddlewares,
	),
	fx.Invoke(
		handler.NewRouter,
		startRateLimitJanitor,
	),
)

type handlerParams struct {
	fx.In

	Auth   *api.AuthHandler
	Drop   *api.DropHandler
	Claim  *api.ClaimHandler
	Stats  *api.StatsHandler
	Events *api.EventsHandler
}

func newHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:   p.Auth,
		Drop:   p.Drop,
		Claim:  p.Claim,
		Stats:  p.Stats,
		Events: p.Events,
	}
}

func newMiddlewares(auth *middleware.AuthMiddleware, idem *middleware.IdempotencyMiddleware, rl *middleware.RateLimitMiddleware) handler.Middlewares {
	return handler.Middlewares{
		Auth:        auth,
		Idempotency: idem,
		RateLimit:   rl,
	}
}

func startRateLimitJanitor(lc fx.Lifecycle, rl *middleware.RateLimitMiddleware) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			rl.StartJanitor(ctx)
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}
