package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/nft-ledger/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Query endpoints (public read access)
		v1.GET("/accounts/:account/balance", handler.GetBalance)
		v1.GET("/accounts/:account/operators/:operator", handler.GetOperator)
		v1.GET("/tokens/:token_id", handler.GetToken)

		// Event journal (public read access)
		v1.GET("/events", handler.ListEvents)

		// Ledger mutations (caller identity comes from the JWT subject)
		v1.POST("/tokens/mint", middleware.Auth(authCfg), handler.Mint)
		v1.POST("/tokens/burn", middleware.Auth(authCfg), handler.Burn)
		v1.POST("/tokens/transfer", middleware.Auth(authCfg), handler.Transfer)
		v1.POST("/tokens/transfer-from", middleware.Auth(authCfg), handler.TransferFrom)
		v1.POST("/tokens/approve", middleware.Auth(authCfg), handler.Approve)
		v1.POST("/operators", middleware.Auth(authCfg), handler.SetApprovalForAll)

		// Webhook endpoints (requires API key authentication only)
		v1.POST("/webhooks/clients", middleware.APIKeyAuth(authCfg), handler.CreateWebhookClient)
	}
}
