package delivery

import (
	"adpulse/internal/delivery/middleware"
	"adpulse/pkg/config"
	"adpulse/pkg/logger"
	"adpulse/pkg/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type HTTPRouter struct {
	handlers *HTTPHandlers
	config   *config.Config
	logger   *logger.Logger
	metrics  *metrics.Metrics
}

func NewHTTPRouter(handlers *HTTPHandlers, config *config.Config, logger *logger.Logger, metrics *metrics.Metrics) *HTTPRouter {
	return &HTTPRouter{
		handlers: handlers,
		config:   config,
		logger:   logger,
		metrics:  metrics,
	}
}

func (r *HTTPRouter) SetupRoutes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(r.logger))
	router.Use(middleware.Recovery(r.logger))
	router.Use(middleware.Metrics(r.metrics))
	router.Use(middleware.Timeout(r.config.Server.RequestTimeout))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}

	router.Use(cors.New(corsConfig))

	// Health endpoint
	router.GET("/health", r.handlers.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		files := v1.Group("/files")
		{
			files.POST("", r.handlers.InitFile)
			files.POST("/:id/chunks",
				middleware.UploadRateLimit(r.config.Upload.RatePerSecond, r.config.Upload.Burst),
				r.handlers.AppendChunk)
			files.POST("/:id/commit", r.handlers.Commit)
			files.DELETE("/:id", r.handlers.DeleteFile)

			files.GET("/:id/records", r.handlers.GetRecords)
			files.GET("/:id/groups", r.handlers.GetGroups)
			files.GET("/:id/summary", r.handlers.GetSummary)

			files.GET("/:id/settings", r.handlers.GetSettings)
			files.PATCH("/:id/settings", r.handlers.PatchSettings)

			files.POST("/:id/chat", r.handlers.Chat)
		}
	}

	// Prometheus metrics endpoint
	router.GET("/metrics", middleware.PrometheusHandler())

	return router
}
