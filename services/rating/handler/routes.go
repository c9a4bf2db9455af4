package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/montirku/montirku/internal/pkg/middleware"
	"github.com/montirku/montirku/internal/pkg/models"
	"github.com/montirku/montirku/services/rating"
	httpHandler "github.com/montirku/montirku/services/rating/handler/http"
)

// Handler combines all handlers for the rating service
type Handler struct {
	ratingHTTP *httpHandler.RatingHandler
}

// NewHandler creates a new combined handler
func NewHandler(ratingUC rating.RatingUC) *Handler {
	return &Handler{
		ratingHTTP: httpHandler.NewRatingHandler(ratingUC),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, jwtConfig models.JWTConfig) {
	e.POST("/reviews", h.ratingHTTP.SubmitReview, middleware.JWTAuthMiddleware(jwtConfig))

	e.GET("/mechanics/:mechanicID/reviews", h.ratingHTTP.ListByMechanic)
	e.GET("/mechanics/:mechanicID/rating", h.ratingHTTP.GetSummary)
}
