package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/wellbeing/backend/internal/apierror"
	"github.com/JonnyWalker81/wellbeing/backend/internal/logger"
	"github.com/JonnyWalker81/wellbeing/backend/internal/middleware"
	"github.com/JonnyWalker81/wellbeing/backend/internal/service"
)

// RouterConfig holds everything the HTTP surface depends on
type RouterConfig struct {
	Logger         logger.Logger
	Verifier       middleware.TokenVerifier
	Insights       service.InsightsService
	AllowedOrigins []string
	Production     bool
	// RateLimiter is optional
	RateLimiter *middleware.RateLimiter
}

// NewRouter builds the gin engine with all routes and middleware
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.SecurityHeaders(cfg.Production))

	router.NoRoute(func(c *gin.Context) {
		apierror.WriteProblem(c, apierror.NewNotFoundError(apierror.GetRequestID(c), c.Request.URL.Path))
	})

	router.GET("/health", Health)

	insightsHandler := NewInsightsHandler(cfg.Insights)
	statsHandler := NewStatsHandler(cfg.Insights)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.Auth(cfg.Verifier))
	if cfg.RateLimiter != nil {
		v1.Use(middleware.RateLimit(cfg.RateLimiter))
	}
	{
		v1.GET("/insights", insightsHandler.GetReport)
		v1.GET("/insights/trend", insightsHandler.GetTrend)
		v1.GET("/insights/correlations", insightsHandler.GetCorrelations)

		v1.GET("/stats/moods", statsHandler.GetMoodStats)
		v1.GET("/stats/tasks", statsHandler.GetTaskStats)

		v1.GET("/dashboard/today", insightsHandler.GetToday)
	}

	return router
}
