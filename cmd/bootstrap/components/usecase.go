package components

import (
	"festserve/internal/pkg/clock"
	"festserve/internal/usecase"
	"festserve/internal/usecase/commands"
	"festserve/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewTokenValidator,
	),
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewIdentityQueries,
		queries.NewCampaignQueries,
		queries.NewScanQueries,
		queries.NewSnapshotQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewCatalogCommands,
		commands.NewCampaignCommands,
		commands.NewScanCommands,
		commands.NewSnapshotCommands,
	),
)
