package components

import (
	"balancestore/internal/domain/pricing"
	"balancestore/internal/pkg/clock"
	"balancestore/internal/usecase/commands"
	"balancestore/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	pricing.NewCalculator,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		queries.NewCartQueries,
		queries.NewCheckoutQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCartCommands,
		commands.NewCouponCommands,
		commands.NewCheckoutCommands,
		commands.NewAuthCommands,
	),
)
