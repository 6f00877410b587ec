package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"appraisalhub-properties/pkg/cache"
	"appraisalhub-properties/pkg/database"
	"appraisalhub-properties/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	_ "net/http/pprof"
)

// setupRoutes configures all routes
func (a *App) setupRoutes() {
	a.setupObservabilityRoutes()
	a.setupHealthCheck()
	a.setupAPIRoutes()
}

// setupObservabilityRoutes exposes metrics and profiling endpoints
func (a *App) setupObservabilityRoutes() {
	// Expose pprof profiling endpoints (disable in production)
	if os.Getenv("ENV") != "production" {
		a.Router.GET("/debug/pprof/*any", gin.WrapH(http.DefaultServeMux))
	}

	// Expose Prometheus metrics endpoint
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// setupHealthCheck configures health check endpoint
func (a *App) setupHealthCheck() {
	a.Router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := database.MongoClient.Ping(ctx, nil); err != nil {
			logger.GlobalLogger.Errorf("MongoDB ping failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "MongoDB unavailable"})
			return
		}

		if _, err := cache.RedisClient.Ping(ctx).Result(); err != nil {
			logger.GlobalLogger.Errorf("Redis ping failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "Redis unavailable"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// setupAPIRoutes configures API routes
func (a *App) setupAPIRoutes() {
	api := a.Router.Group("/api")
	{
		api.GET("/market-trends", a.PropertyDataHandler.GetMarketTrends)

		properties := api.Group("/properties")
		{
			properties.GET("", a.PropertyDataHandler.ListPropertyData)
			properties.GET("/:id/data", a.PropertyDataHandler.GetPropertyData)
			properties.DELETE("/:id/data", a.PropertyDataHandler.InvalidatePropertyData)
			properties.GET("/:id/comparables", a.PropertyDataHandler.GetComparables)
			properties.GET("/:id/valuation", a.PropertyDataHandler.GetValuation)
			properties.POST("/batch-data", a.PropertyDataHandler.BatchPropertyData)
		}
	}
}
