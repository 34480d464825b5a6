package router

import (
	"github.com/labstack/echo/v4"

	"webcarros/internal/adapter/api/handler"
	"webcarros/internal/adapter/api/middleware"
)

func SetupListingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	listingHandler := handler.GetListingHandler()

	listings := e.Group("/v1/listings")
	listings.GET("", listingHandler.ListListings)
	listings.GET("/:id", listingHandler.GetListing)

	myListings := e.Group("/v1/my-listings")
	myListings.Use(authMiddleware.Authenticate)
	myListings.GET("", listingHandler.ListMyListings)
	myListings.DELETE("/:id", listingHandler.DeleteListing, rateLimitMiddleware.Limit("delete_listing"))
}
