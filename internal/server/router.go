package server

import (
	"auction-engine/internal/auth"
	"auction-engine/internal/bidding"
	"auction-engine/internal/ws"
	handler "auction-engine/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(processor *bidding.Processor, hub *ws.Hub, authenticator auth.Authenticator) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(processor)

	// live bidding channel; the credential is checked inside the handler
	// before the upgrade
	router.GET("/ws", hub.ServeWS)

	auctions := router.Group("/auctions")
	{
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.GET("/:auction_id/bids", auctionHandler.GetBidHistoryHandler)
	}

	bids := router.Group("/bids")
	bids.Use(AuthRequired(authenticator))
	{
		bids.POST("", auctionHandler.PlaceBidHandler)
	}

	return router
}
