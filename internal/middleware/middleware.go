package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"course-market/internal/service"

	"github.com/labstack/echo/v4"
)

// ContextClaimsKey is where the authenticated principal's claims live on the
// echo context.
const ContextClaimsKey = "principal"

func extractClaims(c echo.Context, role service.Role) (*service.CustomClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	claims, err := service.VerifyAccessToken(parts[1], role)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, fmt.Sprintf("invalid token: %v", err))
	}
	return claims, nil
}

func requireRole(role service.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c, role)
			if err != nil {
				return err
			}
			c.Set(ContextClaimsKey, claims)
			return next(c)
		}
	}
}

// RequireAdmin admits only tokens issued under the admin signing key.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return requireRole(service.RoleAdmin)(next)
}

// RequireUser admits only tokens issued under the user signing key.
func RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return requireRole(service.RoleUser)(next)
}
