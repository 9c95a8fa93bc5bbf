package components

import (
	"hotel-booking/internal/handler"
	"hotel-booking/internal/handler/api"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		fx.Annotate(
			func(s *jwt.Service) *jwt.Service { return s },
			fx.As(new(api.SessionTTL)),
		),
		api.NewAuthHandler,
		api.NewUserHandler,
		api.NewCatalogHandler,
		api.NewReservationHandler,
		api.NewSupportHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
		NewLoginLimiter,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	user *api.UserHandler,
	catalog *api.CatalogHandler,
	reservation *api.ReservationHandler,
	support *api.SupportHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		User:        user,
		Catalog:     catalog,
		Reservation: reservation,
		Support:     support,
	}
}

// NewLoginLimiter degrades to a no-op when Redis is not configured.
func NewLoginLimiter(cfg config.Config, client redis.UniversalClient) gin.HandlerFunc {
	return middleware.RateLimit(cfg.RateLimit, client)
}
