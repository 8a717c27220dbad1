package bootstrap

import (
	"context"
	"log/slog"

	"festserve/internal/jobs"
	"festserve/internal/pkg/clock"
	"festserve/internal/pkg/config"
	"festserve/internal/usecase/commands"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		func(snapshots commands.SnapshotCommands, clk clock.Clock, cfg config.Config) *jobs.SnapshotScheduler {
			return jobs.NewSnapshotScheduler(snapshots, clk, cfg.Snapshot)
		},
	),
	fx.Invoke(registerScheduler),
)

func registerScheduler(lc fx.Lifecycle, cfg config.Config, scheduler *jobs.SnapshotScheduler) {
	if !cfg.Snapshot.Enabled {
		slog.Info("snapshot scheduler disabled by config")
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			scheduler.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			scheduler.Stop()
			return nil
		},
	})
}
