package components

import (
	"parkme/internal/domain/booking"
	"parkme/internal/domain/pricing"
	"parkme/internal/pkg/clock"
	"parkme/internal/pkg/config"
	"parkme/internal/usecase"
	"parkme/internal/usecase/commands"
	"parkme/internal/usecase/queries"

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
	pricing.NewCalculator,
	func(cfg config.BookingConfig) *booking.TicketGenerator {
		return booking.NewTicketGenerator(cfg.TicketPrefix)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewPricingQueries,
		queries.NewAvailabilityQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
