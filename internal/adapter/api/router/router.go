package router

import (
	"github.com/labstack/echo/v4"

	"webcarros/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	SetupListingRouter(e, authMiddleware, rateLimitMiddleware)
	SetupDraftRouter(e, authMiddleware, rateLimitMiddleware)
	SetupHealthRouter(e)
}
