package components

import (
	"volunteer-hub/internal/pkg/clock"
	"volunteer-hub/internal/usecase"
	"volunteer-hub/internal/usecase/commands"
	"volunteer-hub/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	commands.NewRoleAssigner,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewCoordinatorCommands,
		commands.NewShiftCommands,
		commands.NewEventCommands,
		commands.NewRoleCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewShiftQueries,
		queries.NewBookingQueries,
		queries.NewEventQueries,
		queries.NewUserQueries,
		queries.NewMetricsQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
