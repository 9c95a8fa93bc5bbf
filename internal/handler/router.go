package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-booking/internal/domain/access"
	"hotel-booking/internal/handler/api"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/handler/validation"
	"hotel-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers is the set of API handlers mounted by NewRouter.
type Handlers struct {
	Auth        *api.AuthHandler
	User        *api.UserHandler
	Catalog     *api.CatalogHandler
	Reservation *api.ReservationHandler
	Support     *api.SupportHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware, loginLimiter gin.HandlerFunc) {
	validation.Register()
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware, loginLimiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, am *middleware.AuthMiddleware, loginLimiter gin.HandlerFunc) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	op := am.RequireOperation
	admin := []gin.HandlerFunc{am.AdminOnly()}

	apiGroup := engine.Group("/api")
	apiGroup.Use(am.Authenticate())
	{
		addRoutes(apiGroup.Group("/auth"), []route{
			{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: []gin.HandlerFunc{loginLimiter}},
			{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: []gin.HandlerFunc{op(access.OpAuthMe)}},
		})

		addRoutes(apiGroup.Group("/admin"), []route{
			{Method: http.MethodPost, Path: "/users", Handler: h.User.Create, Mw: admin},
			{Method: http.MethodGet, Path: "/users", Handler: h.User.SearchAll, Mw: admin},
			{Method: http.MethodPost, Path: "/hotels", Handler: h.Catalog.CreateHotel, Mw: admin},
			{Method: http.MethodGet, Path: "/hotels", Handler: h.Catalog.SearchHotels, Mw: admin},
			{Method: http.MethodPut, Path: "/hotels/:id", Handler: h.Catalog.UpdateHotel, Mw: admin},
			{Method: http.MethodPost, Path: "/hotel-rooms", Handler: h.Catalog.CreateRoom, Mw: admin},
			{Method: http.MethodPut, Path: "/hotel-rooms/:id", Handler: h.Catalog.UpdateRoom, Mw: admin},
		})

		addRoutes(apiGroup.Group("/client"), []route{
			{Method: http.MethodPost, Path: "/reservations", Handler: h.Reservation.Create, Mw: []gin.HandlerFunc{op(access.OpReservationCreate)}},
			{Method: http.MethodGet, Path: "/reservations", Handler: h.Reservation.ListOwn, Mw: []gin.HandlerFunc{op(access.OpReservationListOwn)}},
			{Method: http.MethodDelete, Path: "/reservations/:id", Handler: h.Reservation.Delete, Mw: []gin.HandlerFunc{op(access.OpReservationDeleteOwn)}},
			{Method: http.MethodPost, Path: "/support-requests", Handler: h.Support.Open, Mw: []gin.HandlerFunc{op(access.OpSupportOpen)}},
			{Method: http.MethodGet, Path: "/support-requests", Handler: h.Support.ListForClient, Mw: []gin.HandlerFunc{op(access.OpSupportListClient)}},
		})

		addRoutes(apiGroup.Group("/manager"), []route{
			{Method: http.MethodGet, Path: "/users", Handler: h.User.SearchClients, Mw: []gin.HandlerFunc{op(access.OpUserSearchManager)}},
			{Method: http.MethodGet, Path: "/reservations/:userId", Handler: h.Reservation.ListByUser, Mw: []gin.HandlerFunc{op(access.OpReservationListUser)}},
			{Method: http.MethodDelete, Path: "/reservations/:id", Handler: h.Reservation.Delete, Mw: []gin.HandlerFunc{op(access.OpReservationDeleteAny)}},
			{Method: http.MethodGet, Path: "/support-requests", Handler: h.Support.ListForManager, Mw: []gin.HandlerFunc{op(access.OpSupportListManager)}},
			{Method: http.MethodPost, Path: "/support-requests/:id/close", Handler: h.Support.Close, Mw: []gin.HandlerFunc{op(access.OpSupportClose)}},
		})

		addRoutes(apiGroup.Group("/common"), []route{
			{Method: http.MethodGet, Path: "/hotels/:id", Handler: h.Catalog.GetHotel, Mw: []gin.HandlerFunc{op(access.OpHotelGet)}},
			{Method: http.MethodGet, Path: "/hotel-rooms", Handler: h.Catalog.SearchRooms, Mw: []gin.HandlerFunc{op(access.OpRoomSearch)}},
			{Method: http.MethodGet, Path: "/hotel-rooms/:id", Handler: h.Catalog.GetRoom, Mw: []gin.HandlerFunc{op(access.OpRoomGet)}},
			{Method: http.MethodGet, Path: "/support-requests/:id/messages", Handler: h.Support.Messages, Mw: []gin.HandlerFunc{op(access.OpSupportMessagesList)}},
			{Method: http.MethodPost, Path: "/support-requests/:id/messages", Handler: h.Support.Send, Mw: []gin.HandlerFunc{op(access.OpSupportMessagesAppend)}},
			{Method: http.MethodPost, Path: "/support-requests/:id/messages/read", Handler: h.Support.MarkRead, Mw: []gin.HandlerFunc{op(access.OpSupportMessagesRead)}},
			{Method: http.MethodGet, Path: "/support-requests/:id/unread-count", Handler: h.Support.UnreadCount, Mw: []gin.HandlerFunc{op(access.OpSupportUnreadCount)}},
			{Method: http.MethodGet, Path: "/support-requests/:id/events", Handler: h.Support.Events, Mw: []gin.HandlerFunc{op(access.OpSupportEvents)}},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
