package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/pharmadna/pharma-ledger/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Provenance (public read access)
		v1.GET("/provenance/:token_id", handler.GetProvenance)

		// Mirror-backed token reads (public read access)
		v1.GET("/tokens/:token_id", handler.GetToken)
		v1.GET("/tokens/:token_id/events", handler.ListTokenEvents)
		v1.GET("/tokens", handler.ListTokens)

		// Role registry
		v1.GET("/roles/:address", handler.GetRole)
		v1.POST("/roles", middleware.Auth(authCfg), handler.AssignRole)

		// Batch token minting (requires authentication)
		v1.POST("/tokens", middleware.Auth(authCfg), handler.MintToken)

		// Transfer request protocol (requires authentication)
		v1.POST("/requests", middleware.Auth(authCfg), handler.CreateTransferRequest)
		v1.POST("/requests/:id/respond", middleware.Auth(authCfg), handler.RespondTransferRequest)
		v1.POST("/requests/:id/cancel", middleware.Auth(authCfg), handler.CancelTransferRequest)
		v1.GET("/requests", middleware.Auth(authCfg), handler.ListTransferRequests)

		// Milestones (requires authentication)
		v1.POST("/tokens/:token_id/milestones", middleware.Auth(authCfg), handler.CreateMilestone)
	}
}
