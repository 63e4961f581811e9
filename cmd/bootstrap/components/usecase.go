package components

import (
	"rental-engine/internal/domain/booking"
	"rental-engine/internal/pkg/clock"
	"rental-engine/internal/pkg/config"
	"rental-engine/internal/usecase"
	"rental-engine/internal/usecase/commands"
	"rental-engine/internal/usecase/queries"
	"rental-engine/internal/usecase/shared"

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
	func(cfg config.Config) booking.Policy {
		return booking.Policy{CancellationGrace: cfg.Booking.CancellationGrace}
	},
	func(cfg config.Config) queries.CacheConfig {
		return queries.CacheConfig{Size: cfg.Booking.CacheSize, TTL: cfg.Booking.CacheTTL}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewCatalogCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		func(rs queries.BookingReadStore, cfg config.Config) queries.BookingQueries {
			return queries.NewBookingQueries(rs, cfg.Booking.ListLimit)
		},
		queries.NewCatalogQueries,
		// commands drop cached availability of the pairs they touch
		fx.Annotate(
			queries.NewAvailabilityQueries,
			fx.As(fx.Self()),
			fx.As(new(shared.AvailabilityInvalidator)),
		),
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewActorResolver,
	),
)
