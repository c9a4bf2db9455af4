package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/montirku/montirku/internal/pkg/middleware"
	"github.com/montirku/montirku/internal/pkg/models"
	"github.com/montirku/montirku/services/directory"
	httpHandler "github.com/montirku/montirku/services/directory/handler/http"
)

// Handler combines all handlers for the directory service
type Handler struct {
	directoryHTTP *httpHandler.DirectoryHandler
}

// NewHandler creates a new combined handler
func NewHandler(directoryUC directory.DirectoryUC) *Handler {
	return &Handler{
		directoryHTTP: httpHandler.NewDirectoryHandler(directoryUC),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, jwtConfig models.JWTConfig) {
	auth := middleware.JWTAuthMiddleware(jwtConfig)

	mechanics := e.Group("/mechanics")
	mechanics.GET("/nearby", h.directoryHTTP.FindNearby)
	mechanics.GET("/nearby/available", h.directoryHTTP.FindNearbyAvailable)
	mechanics.GET("/:mechanicID", h.directoryHTTP.GetMechanic)

	// Self-service endpoints for authenticated mechanics
	me := mechanics.Group("/me", auth, middleware.RequireRole(models.RoleMechanic))
	me.PUT("/availability", h.directoryHTTP.SetAvailability)
	me.PUT("/location", h.directoryHTTP.UpdateLocation)
}
