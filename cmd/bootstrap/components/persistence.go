package components

import (
	"hotel-booking/internal/infra/mongostore"
	"hotel-booking/internal/infra/pgquery"
	"hotel-booking/internal/infra/readstore"
	"hotel-booking/internal/infra/uow"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	writeModule,
)

var baseOption = fx.Provide(
	NewPGQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			NewPGQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Catalog
		fx.Annotate(
			NewPGQueries,
			fx.As(new(readstore.CatalogReadQueries)),
		),
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(queries.CatalogReadStore)),
		),
		// Reservation
		fx.Annotate(
			NewPGQueries,
			fx.As(new(readstore.ReservationReadQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationViewRepo)),
		),
		// Support threads
		fx.Annotate(
			func(s *mongostore.ThreadStore) *mongostore.ThreadStore { return s },
			fx.As(new(queries.ThreadReadStore)),
		),
	),
)

var writeModule = fx.Module("persistence/write",
	fx.Provide(
		// Postgres repositories are built per transaction inside the unit of work
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			func(s *mongostore.ThreadStore) *mongostore.ThreadStore { return s },
			fx.As(new(commands.ThreadRepository)),
		),
	),
)

func NewPGQueries(_ *pgxpool.Pool) *pgquery.Queries {
	return pgquery.New()
}

func NewDBTX(pool *pgxpool.Pool) pgquery.DBTX {
	return pool
}
