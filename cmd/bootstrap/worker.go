package bootstrap

import (
	"context"
	"log/slog"

	"drop-arbiter/internal/pkg/clock"
	"drop-arbiter/internal/pkg/config"
	"drop-arbiter/internal/usecase/commands"
	"drop-arbiter/internal/usecase/shared"
	"drop-arbiter/internal/worker"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewSweeper,
	),
	fx.Invoke(
		runSweeper,
		seedDemoOperator,
	),
)

func NewSweeper(cmds commands.DropCommands, store shared.IdempotencyStore, clk clock.Clock, cfg config.Config, logger *slog.Logger) *worker.Sweeper {
	return worker.NewSweeper(cmds, store, clk, cfg.Sweeper, logger)
}

func runSweeper(lc fx.Lifecycle, s *worker.Sweeper) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			s.Start()
			return nil
		},
		OnStop: s.Stop,
	})
}

// seedDemoOperator upserts a demo operator when DEMO_ACCESS_CODE is set.
func seedDemoOperator(lc fx.Lifecycle, cfg config.Config, auth commands.AuthCommands, logger *slog.Logger) error {
	if cfg.Demo.AccessCode == "" {
		return nil
	}
	id, err := uuid.Parse(cfg.Demo.OperatorID)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if _, err := auth.RegisterOperator(ctx, id, cfg.Demo.BusinessName, cfg.Demo.AccessCode); err != nil {
				return err
			}
			logger.Info("demo operator ready", "operator_id", id.String(), "business_name", cfg.Demo.BusinessName)
			return nil
		},
	})
	return nil
}
