package server

import (
	"github.com/gin-gonic/gin"

	"marketplace-bff/internal/pkg/clock"
	handler "marketplace-bff/services/marketplace/handler"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(service handler.MarketplaceServiceInterface, clk clock.Clock) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(ActingUserMiddleware)    // caller identity
	router.Use(RequestLoggerMiddleware) // custom request logging

	marketplaceHandler := handler.NewMarketplaceHandler(service, clk)

	router.GET("/healthz", marketplaceHandler.HealthHandler)

	api := router.Group("/api")
	{
		api.GET("/categories-tree", marketplaceHandler.CategoryTreeHandler)
		api.GET("/:resource", marketplaceHandler.ListHandler)
		api.POST("/:resource", marketplaceHandler.CreateHandler)
		api.GET("/:resource/:id", marketplaceHandler.GetHandler)
		api.PATCH("/:resource/:id", marketplaceHandler.UpdateHandler)
	}

	return router
}
