package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"volunteer-hub/internal/domain/user"
	"volunteer-hub/internal/handler/api"
	"volunteer-hub/internal/handler/middleware"
	"volunteer-hub/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	bookingHandler *api.BookingHandler,
	shiftHandler *api.ShiftHandler,
	eventHandler *api.EventHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, bookingHandler, shiftHandler, eventHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	bookingHandler *api.BookingHandler,
	shiftHandler *api.ShiftHandler,
	eventHandler *api.EventHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		events := apiGroup.Group("/events")
		events.Use(authMiddleware.OptionalAuth())
		{
			addRoutes(events, []route{
				{Method: http.MethodGet, Path: "", Handler: eventHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: eventHandler.Get},
				{Method: http.MethodGet, Path: "/:id/roles", Handler: eventHandler.ListRoles},
				{Method: http.MethodGet, Path: "/:id/shifts", Handler: shiftHandler.ListByEvent},
			})
		}

		shifts := apiGroup.Group("/shifts")
		{
			addRoutes(shifts, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: shiftHandler.Get},
			})

			coordinators := shifts.Group("")
			coordinators.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleCoordinator))
			addRoutes(coordinators, []route{
				{Method: http.MethodGet, Path: "/:id/waitlist", Handler: shiftHandler.Waitlist},
				{Method: http.MethodGet, Path: "/:id/bookings", Handler: shiftHandler.Bookings},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.Get},
				{Method: http.MethodPost, Path: "/:id/cancellation", Handler: bookingHandler.RequestCancellation},
			})

			review := bookings.Group("")
			review.Use(authMiddleware.RequireRoleAtLeast(user.RoleCoordinator))
			addRoutes(review, []route{
				{Method: http.MethodPost, Path: "/:id/approve", Handler: bookingHandler.Approve},
				{Method: http.MethodPost, Path: "/:id/cancellation/approve", Handler: bookingHandler.ApproveCancellation},
				{Method: http.MethodPost, Path: "/:id/cancellation/reject", Handler: bookingHandler.RejectCancellation},
				{Method: http.MethodPost, Path: "/:id/attendance", Handler: bookingHandler.SetAttendance},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		{
			staff := admin.Group("")
			staff.Use(authMiddleware.RequireRoleAtLeast(user.RoleCoordinator))
			addRoutes(staff, []route{
				{Method: http.MethodGet, Path: "/events/:id/cancellations", Handler: eventHandler.PendingCancellations},
				{Method: http.MethodGet, Path: "/events/:id/approvals", Handler: eventHandler.PendingApprovals},
				{Method: http.MethodGet, Path: "/events/:id/metrics", Handler: eventHandler.Metrics},
				{Method: http.MethodGet, Path: "/events/:id/volunteers", Handler: eventHandler.Volunteers},
			})

			admins := admin.Group("")
			admins.Use(authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
			addRoutes(admins, []route{
				{Method: http.MethodPost, Path: "/events", Handler: eventHandler.Create},
				{Method: http.MethodPatch, Path: "/events/:id", Handler: eventHandler.Update},
				{Method: http.MethodPost, Path: "/events/:id/archive", Handler: eventHandler.Archive},
				{Method: http.MethodDelete, Path: "/events/:id", Handler: eventHandler.Delete},
				{Method: http.MethodPost, Path: "/events/:id/roles", Handler: eventHandler.CreateRole},
				{Method: http.MethodPatch, Path: "/roles/:id", Handler: eventHandler.UpdateRole},
				{Method: http.MethodDelete, Path: "/roles/:id", Handler: eventHandler.DeleteRole},
				{Method: http.MethodPost, Path: "/shifts", Handler: shiftHandler.Create},
				{Method: http.MethodPost, Path: "/shifts/:id/resize", Handler: shiftHandler.Resize},
				{Method: http.MethodPost, Path: "/shifts/:id/reschedule", Handler: shiftHandler.Reschedule},
				{Method: http.MethodDelete, Path: "/shifts/:id", Handler: shiftHandler.Delete},
				{Method: http.MethodPost, Path: "/shifts/:id/coordinators", Handler: shiftHandler.AssignCoordinator},
				{Method: http.MethodDelete, Path: "/shifts/:id/coordinators/:user_id", Handler: shiftHandler.RemoveCoordinator},
				{Method: http.MethodPost, Path: "/bookings/:id/cancel", Handler: bookingHandler.AdminCancel},
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
