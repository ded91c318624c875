package components

import (
	"context"
	"log/slog"

	"parkme/internal/pkg/clock"
	"parkme/internal/pkg/config"
	"parkme/internal/usecase/commands"
	"parkme/internal/usecase/shared"
	"parkme/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewNoShowSweeper,
	),
	fx.Invoke(RunNoShowSweeper),
)

func NewNoShowSweeper(uow shared.UnitOfWork, cmds commands.BookingCommands, clk clock.Clock, cfg config.BookingConfig) *worker.NoShowSweeper {
	return worker.NewNoShowSweeper(uow.CommandReads(), cmds, clk, cfg)
}

func RunNoShowSweeper(lc fx.Lifecycle, sweeper *worker.NoShowSweeper, cfg config.BookingConfig, logger *slog.Logger) {
	if !cfg.SweepEnabled {
		logger.Info("no-show sweeper disabled")
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			// The start context is cancelled once startup finishes.
			sweeper.Start(context.Background())
			return nil
		},
		OnStop: func(_ context.Context) error {
			sweeper.Stop()
			return nil
		},
	})
}
