package bootstrap

import (
	"context"
	"log/slog"

	"hotel-frontdesk/internal/pkg/config"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(NewSweeper),
	fx.Invoke(startSweeper),
)

func NewSweeper(jobs commands.JobCommands, cfg config.Config, logger *slog.Logger) *worker.Sweeper {
	return worker.NewSweeper(jobs, cfg.Worker.PollInterval, logger)
}

func startSweeper(lc fx.Lifecycle, s *worker.Sweeper, cfg config.Config, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("ジョブスイーパーを起動します", "interval", cfg.Worker.PollInterval)
			s.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			s.Stop()
			logger.Info("ジョブスイーパーを停止しました")
			return nil
		},
	})
}
