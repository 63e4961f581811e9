package components

import (
	"rental-engine/internal/infra/memstore"
	"rental-engine/internal/infra/readstore"
	sqlc "rental-engine/internal/infra/sqlc/generated"
	"rental-engine/internal/infra/uow"
	"rental-engine/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PostgresPersistenceModule = fx.Module("persistence/postgres",
	baseOption,
	readstoreModule,
	fx.Provide(
		// repositories are built per transaction by the unit of work
		uow.NewPostgresUoW,
	),
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingViewQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Catalog
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CatalogViewQueries)),
		),
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(queries.CatalogReadStore)),
		),
		// Availability
		fx.Annotate(
			readstore.NewAvailabilityReadStore,
			fx.As(new(queries.AvailabilityReadStore)),
		),
	),
)

// MemoryPersistenceModule keeps all state in process. Nothing survives a
// restart.
var MemoryPersistenceModule = fx.Module("persistence/memory",
	fx.Provide(
		memstore.NewStore,
		memstore.NewUoW,
		fx.Annotate(
			memstore.NewReadStore,
			fx.As(new(queries.BookingReadStore)),
			fx.As(new(queries.CatalogReadStore)),
			fx.As(new(queries.AvailabilityReadStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
