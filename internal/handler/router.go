package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"rental-engine/internal/domain/user"
	"rental-engine/internal/handler/api"
	"rental-engine/internal/handler/middleware"
	"rental-engine/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Booking      *api.BookingHandler
	Availability *api.AvailabilityHandler
	Item         *api.ItemHandler
	Location     *api.LocationHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.Tracing())
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	staff := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleManager)}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		locations := apiGroup.Group("/locations")
		addRoutes(locations, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Location.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Location.Get},
			{Method: http.MethodPost, Path: "", Handler: h.Location.Create, Mw: staff},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Location.Update, Mw: staff},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Location.Delete, Mw: staff},
		})

		items := apiGroup.Group("/items")
		addRoutes(items, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Item.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Item.Get},
			{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Availability.Get},
			{Method: http.MethodPost, Path: "", Handler: h.Item.Create, Mw: staff},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Item.Update, Mw: staff},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Item.Delete, Mw: staff},
			{Method: http.MethodPut, Path: "/:id/stock/:locationId", Handler: h.Item.SetStock, Mw: staff},
			{Method: http.MethodDelete, Path: "/:id/stock/:locationId", Handler: h.Item.RemoveStock, Mw: staff},
		})

		bookings := apiGroup.Group("/bookings")
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Booking.Reserve},
			{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Booking.Update},
			{Method: http.MethodPost, Path: "/:id/confirm", Handler: h.Booking.Confirm, Mw: staff},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.Cancel},
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
