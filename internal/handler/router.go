package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"drop-arbiter/internal/handler/api"
	"drop-arbiter/internal/handler/middleware"
	"drop-arbiter/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth   *api.AuthHandler
	Drop   *api.DropHandler
	Claim  *api.ClaimHandler
	Stats  *api.StatsHandler
	Events *api.EventsHandler
}

type Middlewares struct {
	Auth        *middleware.AuthMiddleware
	Idempotency *middleware.IdempotencyMiddleware
	RateLimit   *middleware.RateLimitMiddleware
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, mw Middlewares) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, mw)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, mw Middlewares) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireOperator := mw.Auth.RequireOperator()
	idempotent := mw.Idempotency.Handle()

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(requireOperator)
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		drops := apiGroup.Group("/drops")
		{
			// public: claimants have no account
			addRoutes(drops, []route{
				{Method: http.MethodPost, Path: "/:id/claim", Handler: h.Claim.Submit, Mw: []gin.HandlerFunc{mw.RateLimit.Handle(), idempotent}},
			})

			addRoutes(drops, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Drop.Create, Mw: []gin.HandlerFunc{requireOperator, idempotent}},
				{Method: http.MethodGet, Path: "", Handler: h.Drop.List, Mw: []gin.HandlerFunc{requireOperator}},
				{Method: http.MethodGet, Path: "/history", Handler: h.Drop.History, Mw: []gin.HandlerFunc{requireOperator}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Drop.Get, Mw: []gin.HandlerFunc{requireOperator}},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Drop.Patch, Mw: []gin.HandlerFunc{requireOperator}},
			})
		}

		claims := apiGroup.Group("/claims")
		claims.Use(requireOperator)
		{
			addRoutes(claims, []route{
				{Method: http.MethodPatch, Path: "/:id/confirm", Handler: h.Claim.Confirm},
				{Method: http.MethodPatch, Path: "/:id/reject", Handler: h.Claim.Reject},
			})
		}

		stats := apiGroup.Group("/stats")
		stats.Use(requireOperator)
		{
			addRoutes(stats, []route{
				{Method: http.MethodGet, Path: "/today", Handler: h.Stats.Today},
				{Method: http.MethodGet, Path: "/history", Handler: h.Stats.History},
			})
		}

		events := apiGroup.Group("/events")
		events.Use(requireOperator)
		{
			addRoutes(events, []route{
				{Method: http.MethodGet, Path: "/stream", Handler: h.Events.Stream},
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

// Route middleware runs as regular gin handlers so c.Next inside it still
// reaches the route handler.
func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		chain := make([]gin.HandlerFunc, 0, len(r.Mw)+1)
		chain = append(chain, r.Mw...)
		chain = append(chain, r.Handler)
		g.Handle(r.Method, r.Path, chain...)
	}
}
