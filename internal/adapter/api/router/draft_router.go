package router

import (
	"github.com/labstack/echo/v4"

	"webcarros/internal/adapter/api/handler"
	"webcarros/internal/adapter/api/middleware"
)

func SetupDraftRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	draftHandler := handler.GetDraftHandler()

	drafts := e.Group("/v1/drafts")
	drafts.Use(authMiddleware.Authenticate)
	drafts.GET("/images", draftHandler.ListImages)
	drafts.POST("/images", draftHandler.UploadImage, rateLimitMiddleware.Limit("upload_image"))
	drafts.DELETE("/images/:assetId", draftHandler.DeleteImage)

	myListings := e.Group("/v1/my-listings")
	myListings.Use(authMiddleware.Authenticate)
	myListings.POST("", draftHandler.CreateListing)
}
