package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"festserve/internal/domain/identity"
	"festserve/internal/handler/api"
	"festserve/internal/handler/middleware"
	"festserve/internal/pkg/config"
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
	catalogHandler *api.CatalogHandler,
	campaignHandler *api.CampaignHandler,
	scanHandler *api.ScanHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, authHandler, catalogHandler, campaignHandler, scanHandler, authMiddleware)
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
	cfg config.Config,
	authHandler *api.AuthHandler,
	catalogHandler *api.CatalogHandler,
	campaignHandler *api.CampaignHandler,
	scanHandler *api.ScanHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		apiGroup.GET("/healthz", healthCheck)

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/token", Handler: authHandler.Token},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		// Setup endpoints are deliberately open: festival staff register
		// stalls and products before any account exists.
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/stalls", Handler: catalogHandler.CreateStall},
			{Method: http.MethodPost, Path: "/products", Handler: catalogHandler.CreateProduct},
		})

		campaigns := apiGroup.Group("/campaigns")
		campaigns.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(identity.RoleAdvertiser))
		{
			addRoutes(campaigns, []route{
				{Method: http.MethodPost, Path: "", Handler: campaignHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: campaignHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: campaignHandler.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: campaignHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: campaignHandler.Delete},
				{Method: http.MethodGet, Path: "/:id/scans", Handler: campaignHandler.ListScans},
				{Method: http.MethodGet, Path: "/:id/scans/count", Handler: campaignHandler.CountScans},
				{Method: http.MethodPost, Path: "/:id/snapshots", Handler: campaignHandler.TakeSnapshot},
				{Method: http.MethodGet, Path: "/:id/snapshots", Handler: campaignHandler.ListSnapshots},
			})
		}

		scans := apiGroup.Group("/scan-events")
		scans.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(identity.RoleScanner))
		{
			addRoutes(scans, []route{
				{Method: http.MethodPost, Path: "", Handler: scanHandler.Record, Mw: []gin.HandlerFunc{middleware.ScanRateLimit(cfg.Scan)}},
				{Method: http.MethodGet, Path: "", Handler: scanHandler.ListOwn},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
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
