package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/montirku/montirku/internal/pkg/jwt"
	"github.com/montirku/montirku/internal/pkg/models"
	"github.com/montirku/montirku/internal/utils"
)

// Context keys populated by JWTAuthMiddleware
const (
	ContextKeyIdentity = "identity"
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
)

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			identity, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			c.Set(ContextKeyIdentity, identity)
			c.Set(ContextKeyUserID, identity.ID)
			c.Set(ContextKeyUserRole, identity.Role)

			return next(c)
		}
	}
}

// IdentityFromContext extracts the authenticated identity set by
// JWTAuthMiddleware. Returns nil when the request is unauthenticated.
func IdentityFromContext(c echo.Context) *models.Identity {
	identity, ok := c.Get(ContextKeyIdentity).(*models.Identity)
	if !ok {
		return nil
	}
	return identity
}

// RequireRole rejects requests whose authenticated role does not match
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := IdentityFromContext(c)
			if identity == nil {
				return utils.UnauthorizedResponse(c, "")
			}
			if identity.Role != role {
				return utils.ForbiddenResponse(c, "insufficient role")
			}
			return next(c)
		}
	}
}
