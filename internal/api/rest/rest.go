package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/tokentreat/treat-service/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		// Treat reads (public)
		v1.GET("/treats/burnable", handler.ListBurnableTreats)
		v1.GET("/treats/:id", handler.GetTreat)
		v1.GET("/issuers/:address/treats", handler.ListIssuedTreats)
		v1.GET("/tokens", handler.ListTokens)
		v1.GET("/tokens/:address", handler.GetToken)

		// Quotes are read-only against the chain
		v1.POST("/quotes", handler.CreateQuote)

		// Writes sign with the service wallet (requires authentication)
		v1.POST("/treats", middleware.Auth(authCfg), handler.CreateTreat)
		v1.POST("/treats/:id/burn", middleware.Auth(authCfg), handler.BurnTreat)
		v1.GET("/creations/:id", handler.GetCreationRun)

		// Image generation sessions
		v1.PUT("/images/sessions/:session", middleware.Auth(authCfg), handler.SubmitImagePrompt)
		v1.GET("/images/sessions/:session", handler.GetImageSession)
	}
}
