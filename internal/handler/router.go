package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-frontdesk/internal/domain/user"
	"hotel-frontdesk/internal/handler/api"
	"hotel-frontdesk/internal/handler/middleware"
	"hotel-frontdesk/internal/pkg/config"

	"go.uber.org/fx"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every API handler for the router.
type Handlers struct {
	fx.In

	Auth      *api.AuthHandler
	Booking   *api.BookingHandler
	Room      *api.RoomHandler
	Ledger    *api.LedgerHandler
	Dashboard *api.DashboardHandler
	Activity  *api.ActivityHandler
	Menu      *api.MenuHandler
	User      *api.UserHandler
	Events    *api.EventsHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.Middleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	staff := authMiddleware.RequireRoleAtLeast(user.RoleStaff)
	owner := authMiddleware.RequireRoleAtLeast(user.RoleOwner)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		// Every signed-in role may read; writes need staff, inventory and accounts need owner.
		protected := apiGroup.Group("")
		protected.Use(authMiddleware.RequireAuth())
		{
			addRoutes(protected, []route{
				{Method: http.MethodGet, Path: "/events", Handler: h.Events.Stream},
				{Method: http.MethodGet, Path: "/activity/me", Handler: h.Activity.Me},

				{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.List},
				{Method: http.MethodGet, Path: "/bookings/:id", Handler: h.Booking.Get},
				{Method: http.MethodPost, Path: "/bookings/quote", Handler: h.Booking.Quote},
				{Method: http.MethodPost, Path: "/bookings", Handler: h.Booking.Create, Mw: []gin.HandlerFunc{staff}},
				{Method: http.MethodPost, Path: "/bookings/:id/check-in", Handler: h.Booking.CheckIn, Mw: []gin.HandlerFunc{staff}},
				{Method: http.MethodPost, Path: "/bookings/:id/check-out", Handler: h.Booking.CheckOut, Mw: []gin.HandlerFunc{staff}},
				{Method: http.MethodPost, Path: "/bookings/:id/payment", Handler: h.Booking.SettlePayment, Mw: []gin.HandlerFunc{staff}},

				{Method: http.MethodGet, Path: "/rooms", Handler: h.Room.List},
				{Method: http.MethodGet, Path: "/rooms/availability", Handler: h.Room.Availability},
				{Method: http.MethodGet, Path: "/rooms/board", Handler: h.Room.Board},
				{Method: http.MethodGet, Path: "/rooms/:id", Handler: h.Room.Get},
				{Method: http.MethodPatch, Path: "/rooms/:id/status", Handler: h.Room.SetStatus, Mw: []gin.HandlerFunc{staff}},
				{Method: http.MethodPost, Path: "/rooms", Handler: h.Room.Create, Mw: []gin.HandlerFunc{owner}},
				{Method: http.MethodPut, Path: "/rooms/:id", Handler: h.Room.Update, Mw: []gin.HandlerFunc{owner}},
				{Method: http.MethodGet, Path: "/room-types", Handler: h.Room.ListTypes},
				{Method: http.MethodPost, Path: "/room-types", Handler: h.Room.CreateType, Mw: []gin.HandlerFunc{owner}},

				{Method: http.MethodGet, Path: "/transactions", Handler: h.Ledger.List},
				{Method: http.MethodPost, Path: "/transactions", Handler: h.Ledger.Record, Mw: []gin.HandlerFunc{staff}},

				{Method: http.MethodGet, Path: "/dashboard/metrics", Handler: h.Dashboard.Metrics},
				{Method: http.MethodGet, Path: "/dashboard/cashflow", Handler: h.Dashboard.Cashflow},
				{Method: http.MethodGet, Path: "/dashboard/monthly", Handler: h.Dashboard.Monthly},

				{Method: http.MethodGet, Path: "/menu-items", Handler: h.Menu.List},
				{Method: http.MethodPost, Path: "/menu-items", Handler: h.Menu.Create, Mw: []gin.HandlerFunc{staff}},
				{Method: http.MethodPut, Path: "/menu-items/:id", Handler: h.Menu.Update, Mw: []gin.HandlerFunc{staff}},
				{Method: http.MethodDelete, Path: "/menu-items/:id", Handler: h.Menu.Delete, Mw: []gin.HandlerFunc{staff}},

				{Method: http.MethodGet, Path: "/users", Handler: h.User.List, Mw: []gin.HandlerFunc{owner}},
				{Method: http.MethodPost, Path: "/users", Handler: h.User.Create, Mw: []gin.HandlerFunc{owner}},
				{Method: http.MethodPatch, Path: "/users/:id/role", Handler: h.User.ChangeRole, Mw: []gin.HandlerFunc{owner}},
				{Method: http.MethodPatch, Path: "/users/:id/active", Handler: h.User.SetActive, Mw: []gin.HandlerFunc{owner}},
			})
		}
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
