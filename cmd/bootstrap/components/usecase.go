package components

import (
	"pricewatch/internal/pkg/clock"
	"pricewatch/internal/pkg/config"
	"pricewatch/internal/usecase"
	"pricewatch/internal/usecase/commands"
	"pricewatch/internal/usecase/queries"

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
	func(cfg config.Config) commands.ModerationOptions {
		return commands.ModerationOptions{
			EventsTopic: cfg.Events.Topic,
			Timeout:     cfg.Moderation.Timeout,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewSubmissionUseCase,
		commands.NewModerationUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSubmissionQueries,
		queries.NewPriceLedgerQueries,
		queries.NewUserQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
