package server

import (
	"marketplace-auction/internal/auth"
	handler "marketplace-auction/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application. Mutating
// endpoints sit behind the bearer-token middleware; read-only queries
// are public.
func SetupRouter(service handler.AuctionServiceInterface, tokens *auth.TokenManager) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(service)
	authed := CallerAuthMiddleware(tokens)

	admin := router.Group("/admin", authed)
	{
		admin.POST("/init", auctionHandler.InitializeHandler)
		admin.POST("/verifiers", auctionHandler.AddVerifierHandler)
		admin.POST("/resolvers", auctionHandler.AddResolverHandler)
	}

	auctions := router.Group("/auctions")
	{
		auctions.GET("", auctionHandler.GetAuctionsHandler)
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.GET("/:auction_id/shipping/cost", auctionHandler.ShippingCostHandler)

		auctions.POST("", authed, auctionHandler.CreateAuctionHandler)
		auctions.POST("/:auction_id/start", authed, auctionHandler.StartAuctionHandler)
		auctions.POST("/:auction_id/cancel", authed, auctionHandler.CancelAuctionHandler)
		auctions.POST("/:auction_id/verify", authed, auctionHandler.VerifyProductHandler)
		auctions.POST("/:auction_id/bids", authed, auctionHandler.PlaceBidHandler)
		auctions.POST("/:auction_id/end", auctionHandler.EndAuctionHandler)
		auctions.POST("/:auction_id/dispute", authed, auctionHandler.OpenDisputeHandler)
		auctions.POST("/:auction_id/dispute/resolve", authed, auctionHandler.ResolveDisputeHandler)
		auctions.POST("/:auction_id/shipping", authed, auctionHandler.AddShippingInfoHandler)
		auctions.PATCH("/:auction_id/shipping/status", authed, auctionHandler.UpdateShippingStatusHandler)
	}

	users := router.Group("/users")
	{
		users.GET("/:user_id/selling", auctionHandler.GetUserSellingHandler)
		users.GET("/:user_id/bidding", auctionHandler.GetUserBiddingHandler)
	}

	return router
}
