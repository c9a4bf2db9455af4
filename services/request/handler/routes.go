package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/montirku/montirku/internal/pkg/middleware"
	"github.com/montirku/montirku/internal/pkg/models"
	"github.com/montirku/montirku/services/request"
	httpHandler "github.com/montirku/montirku/services/request/handler/http"
)

// Handler combines all handlers for the request service
type Handler struct {
	requestHTTP *httpHandler.RequestHandler
}

// NewHandler creates a new combined handler
func NewHandler(requestUC request.RequestUC) *Handler {
	return &Handler{
		requestHTTP: httpHandler.NewRequestHandler(requestUC),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, jwtConfig models.JWTConfig) {
	requests := e.Group("/requests", middleware.JWTAuthMiddleware(jwtConfig))
	requests.POST("", h.requestHTTP.CreateRequest)
	requests.GET("", h.requestHTTP.ListMine)
	requests.GET("/:requestID", h.requestHTTP.GetRequest)
	requests.POST("/:requestID/status", h.requestHTTP.Transition)
}
