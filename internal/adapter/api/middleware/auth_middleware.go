package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"webcarros/internal/domain/entity"
	"webcarros/internal/infrastructure/firebase"
)

type AuthMiddleware struct {
	authClient *firebase.FirebaseAuthClient
}

func NewAuthMiddleware(authClient *firebase.FirebaseAuthClient) *AuthMiddleware {
	return &AuthMiddleware{
		authClient: authClient,
	}
}

func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}

		ident, err := m.authClient.VerifyToken(c.Request().Context(), parts[1])
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		c.Set("identity", ident)
		c.Set("uid", ident.UID)

		return next(c)
	}
}

// IdentityFromContext pulls the Identity set by Authenticate. Handlers behind
// the middleware can rely on Authenticated being true.
func IdentityFromContext(c echo.Context) entity.Identity {
	if ident, ok := c.Get("identity").(entity.Identity); ok {
		return ident
	}
	return entity.Identity{}
}
