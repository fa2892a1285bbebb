package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/lensport/catalog-sync-v2/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/healthz", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Vendor catalog endpoints (public read access)
		v1.GET("/vendors", handler.ListVendors)
		v1.GET("/vendors/:slug/state", handler.GetVendorState)
		v1.GET("/vendors/:slug/runs", handler.ListVendorRuns)
		v1.GET("/runs/:id", handler.GetRun)

		// Sync trigger (requires authentication)
		v1.POST("/vendors/:slug/sync", middleware.Auth(authCfg), handler.SyncVendor)

		// Integration management (requires authentication)
		v1.PUT("/vendors/:slug/integration", middleware.Auth(authCfg), handler.UpsertVendorIntegration)
		v1.POST("/vendors/:slug/integration/test", middleware.Auth(authCfg), handler.TestVendorIntegration)
		v1.POST("/integrations/test-all", middleware.Auth(authCfg), handler.TestAllIntegrations)
	}
}
