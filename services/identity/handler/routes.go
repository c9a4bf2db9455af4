package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/montirku/montirku/internal/pkg/middleware"
	"github.com/montirku/montirku/internal/pkg/models"
	"github.com/montirku/montirku/services/identity"
	httpHandler "github.com/montirku/montirku/services/identity/handler/http"
)

// Handler combines all handlers for the identity service
type Handler struct {
	identityHTTP *httpHandler.IdentityHandler
}

// NewHandler creates a new combined handler
func NewHandler(identityUC identity.IdentityUC) *Handler {
	return &Handler{
		identityHTTP: httpHandler.NewIdentityHandler(identityUC),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, jwtConfig models.JWTConfig) {
	auth := e.Group("/auth")
	auth.POST("/register", h.identityHTTP.Register)
	auth.POST("/login", h.identityHTTP.Login)
	auth.GET("/me", h.identityHTTP.Me, middleware.JWTAuthMiddleware(jwtConfig))

	notifications := e.Group("/notifications", middleware.JWTAuthMiddleware(jwtConfig))
	notifications.GET("", h.identityHTTP.ListNotifications)
	notifications.POST("/:notificationID/read", h.identityHTTP.MarkNotificationRead)
}
