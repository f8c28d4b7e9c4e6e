package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"pricewatch/internal/domain/user"
	"pricewatch/internal/handler/api"
	"pricewatch/internal/handler/middleware"
	"pricewatch/internal/pkg/config"
	"pricewatch/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine            *gin.Engine
	Config            config.Config
	Logger            *middleware.Logger
	Metrics           *metrics.Registry
	AuthMiddleware    *middleware.AuthMiddleware
	SubmissionHandler *api.SubmissionHandler
	ModerationHandler *api.ModerationHandler
	PriceHandler      *api.PriceLedgerHandler
	UserHandler       *api.UserHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Logger, p.Metrics)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Registry) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.RequestMetrics(m))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	auth := p.AuthMiddleware

	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(p.Metrics.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/products/:id/prices", Handler: p.PriceHandler.Get},
			{Method: http.MethodGet, Path: "/leaderboard", Handler: p.UserHandler.Leaderboard},
		})

		authRequired := apiGroup.Group("")
		authRequired.Use(auth.RequireAuth())
		addRoutes(authRequired, []route{
			{Method: http.MethodPost, Path: "/submissions", Handler: p.SubmissionHandler.Create},
			{Method: http.MethodGet, Path: "/submissions/:id", Handler: p.SubmissionHandler.Get},
			{Method: http.MethodGet, Path: "/users/:id/rewards", Handler: p.UserHandler.GetRewards},
		})

		moderation := apiGroup.Group("/moderation")
		moderation.Use(auth.RequireAuth(), auth.RequireRoleAtLeast(user.RoleModerator))
		{
			addRoutes(moderation, []route{
				{Method: http.MethodGet, Path: "/submissions", Handler: p.ModerationHandler.ListPending},
				{Method: http.MethodPost, Path: "/submissions/:id/approve", Handler: p.ModerationHandler.Approve},
				{Method: http.MethodPost, Path: "/submissions/:id/reject", Handler: p.ModerationHandler.Reject},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(auth.RequireAuth())
		{
			addRoutes(admin, []route{
				{
					Method:  http.MethodDelete,
					Path:    "/submissions/:id",
					Handler: p.SubmissionHandler.Purge,
					Mw:      []gin.HandlerFunc{auth.RequireRoleAtLeast(user.RoleAdmin)},
				},
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

// chainHandlers runs hs in order. Handlers call c.Next, so each one is
// invoked directly here and the chain stops once one aborts.
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
