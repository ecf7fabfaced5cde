package server

import (
	history "auction-insights/internal/historyService"
	handler "auction-insights/services/history/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(historyService *history.HistoryService) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	historyHandler := handler.NewHistoryHandler(historyService)

	auctions := router.Group("/auctions")
	{
		auctions.GET("/:auction_id/bids", historyHandler.GetBidHistoryHandler)
		auctions.GET("/:auction_id/bids/page", historyHandler.GetPaginatedBidHistoryHandler)
		auctions.GET("/:auction_id/trends", historyHandler.GetBidTrendsHandler)
	}

	users := router.Group("/users")
	{
		users.GET("/:user_id/bids", historyHandler.GetUserBidHistoryHandler)
	}

	return router
}
