package components

import (
	"hotel-booking/internal/infra/notify"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/jwt"
	"hotel-booking/internal/pkg/password"
	"hotel-booking/internal/usecase"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

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
	password.NewBcryptHasher,
	fx.Annotate(
		func(s *jwt.Service) *jwt.Service { return s },
		fx.As(new(commands.TokenService)),
	),
	fx.Annotate(
		func(h *notify.Hub) *notify.Hub { return h },
		fx.As(new(commands.EventPublisher)),
		fx.As(new(commands.EventSubscriber)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewUserCommands,
		commands.NewAuthCommands,
		commands.NewCatalogCommands,
		commands.NewReservationCommands,
		commands.NewSupportCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewCatalogQueries,
		queries.NewReservationQueries,
		queries.NewSupportQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
