// Package server assembles the gin engine: middleware, handlers and routes.
package server

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"realartist-backend/internal/assets"
	"realartist-backend/internal/config"
	"realartist-backend/internal/generation"
	"realartist-backend/internal/handlers"
	"realartist-backend/internal/middleware"
	"realartist-backend/internal/services"
	"realartist-backend/internal/storage"
)

const Version = "2025.1.0"

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Config    *config.Config
	Logger    *zap.SugaredLogger
	Store     storage.Storage
	Assets    assets.Store
	Simulator *generation.Simulator
	StartedAt time.Time
}

func NewRouter(deps Deps) *gin.Engine {
	cfg := deps.Config
	lg := deps.Logger

	router := gin.New()
	// Forwarding headers are honored only from configured proxies, so
	// ClientIP (rate limit key, audit address) defaults to the socket peer.
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		lg.Warnw("Ignoring invalid TRUSTED_PROXIES", "error", err)
		_ = router.SetTrustedProxies(nil)
	}
	router.Use(middleware.Recovery(lg))
	router.Use(middleware.RequestLogger(lg))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS(cfg.CORSOrigin))

	analytics := services.NewAnalyticsService(deps.Store, Version, deps.StartedAt)

	healthHandler := handlers.NewHealthHandler(deps.Store, Version, cfg.Environment, deps.StartedAt)
	userHandler := handlers.NewUserHandler(deps.Store, lg)
	projectsHandler := handlers.NewProjectsHandler(deps.Store, deps.Assets, lg)
	artistsHandler := handlers.NewArtistsHandler(deps.Store, lg)
	generationHandler := handlers.NewGenerationHandler(deps.Simulator, lg)
	analyticsHandler := handlers.NewAnalyticsHandler(analytics, lg)
	securityHandler := handlers.NewSecurityHandler(deps.Store, lg)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check (no identity)
	router.GET("/health", healthHandler.Liveness)

	api := router.Group("/api")
	api.GET("/health", healthHandler.Readiness)
	api.GET("/health/db", healthHandler.Database)
	api.GET("/version", healthHandler.Version)

	api.Use(middleware.Identity(cfg.DemoUserID, cfg.AuthJWTSecret))

	// One budget shared by every write and generation route.
	limited := middleware.NewRateLimiter(cfg.RateLimitMax, cfg.RateLimitWindow).Middleware()

	// User
	api.GET("/user", userHandler.GetUser)
	api.GET("/user/stats", userHandler.GetStats)

	// Projects
	api.GET("/projects", projectsHandler.ListProjects)
	api.GET("/projects/:id", projectsHandler.GetProject)
	api.POST("/projects", limited, projectsHandler.CreateProject)
	api.PATCH("/projects/:id", limited, projectsHandler.UpdateProject)
	api.DELETE("/projects/:id", limited, projectsHandler.DeleteProject)
	api.GET("/projects/:id/royalties", projectsHandler.GetProjectRoyalties)

	// AI catalog and simulated generation
	api.GET("/ai-artists", artistsHandler.ListArtists)
	api.GET("/ai-artists/:id", artistsHandler.GetArtist)
	ai := api.Group("/ai", limited)
	ai.POST("/generate-script", generationHandler.GenerateScript)
	ai.POST("/generate-voice", generationHandler.GenerateVoice)
	ai.POST("/generate-instrumental", generationHandler.GenerateInstrumental)

	// Analytics and monitoring
	api.GET("/analytics/dashboard", analyticsHandler.Dashboard)
	api.GET("/royalties/summary", analyticsHandler.RoyaltySummary)
	api.GET("/monitor", analyticsHandler.Monitor)
	api.GET("/security/logs", securityHandler.ListLogs)

	return router
}
