package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"event-coupon-admin/internal/handler/api"
	"event-coupon-admin/internal/handler/middleware"
	"event-coupon-admin/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth      *api.AuthHandler
	Register  *api.RegisterHandler
	Attendees *api.AttendeeHandler
	Coupons   *api.CouponHandler
	Guests    *api.GuestHandler
	Sync      *api.SyncHandler
	Settings  *api.SettingsHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// Public surface: registration and display settings
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/register", Handler: h.Register.Register},
			{Method: http.MethodGet, Path: "/public/settings", Handler: h.Settings.GetPublic},
		})

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		attendees := apiGroup.Group("/attendees")
		attendees.Use(authMiddleware.RequireAuth())
		{
			addRoutes(attendees, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Attendees.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Attendees.Get},
				{Method: http.MethodPost, Path: "/:id/assign-coupon", Handler: h.Attendees.AssignCoupon},
				{Method: http.MethodPost, Path: "/:id/send-email", Handler: h.Attendees.SendCouponEmail},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Attendees.Delete},
			})
		}

		coupons := apiGroup.Group("/coupons")
		coupons.Use(authMiddleware.RequireAuth())
		{
			addRoutes(coupons, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Coupons.List},
				{Method: http.MethodGet, Path: "/stats", Handler: h.Coupons.Stats},
				{Method: http.MethodPost, Path: "", Handler: h.Coupons.Create},
				{Method: http.MethodPost, Path: "/bulk", Handler: h.Coupons.BulkImport},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Coupons.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Coupons.Delete},
			})
		}

		guests := apiGroup.Group("/guests")
		guests.Use(authMiddleware.RequireAuth())
		{
			addRoutes(guests, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Guests.List},
				{Method: http.MethodGet, Path: "/:lumaGuestId", Handler: h.Guests.Get},
				{Method: http.MethodPost, Path: "/:lumaGuestId/assign-coupon", Handler: h.Guests.AssignCoupon},
				{Method: http.MethodPost, Path: "/:lumaGuestId/send-email", Handler: h.Guests.SendCouponEmail},
				{Method: http.MethodDelete, Path: "/:lumaGuestId/coupon", Handler: h.Guests.UnassignCoupon},
			})
		}

		sync := apiGroup.Group("/sync")
		sync.Use(authMiddleware.RequireAuth())
		{
			addRoutes(sync, []route{
				{Method: http.MethodPost, Path: "/guests", Handler: h.Sync.SyncGuests},
				{Method: http.MethodGet, Path: "/logs", Handler: h.Sync.ListLogs},
			})
		}

		events := apiGroup.Group("/events")
		events.Use(authMiddleware.RequireAuth())
		{
			addRoutes(events, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Sync.ListEvents},
			})
		}

		luma := apiGroup.Group("/luma")
		luma.Use(authMiddleware.RequireAuth())
		{
			addRoutes(luma, []route{
				{Method: http.MethodPost, Path: "/test-connection", Handler: h.Sync.TestConnection},
			})
		}

		settings := apiGroup.Group("/settings")
		settings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(settings, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Settings.Get},
				{Method: http.MethodPatch, Path: "", Handler: h.Settings.Update},
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
