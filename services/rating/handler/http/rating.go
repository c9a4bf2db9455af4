package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/montirku/montirku/internal/pkg/middleware"
	"github.com/montirku/montirku/internal/pkg/models"
	"github.com/montirku/montirku/internal/utils"
	"github.com/montirku/montirku/services/rating"
)

// RatingHandler handles HTTP requests for review and rating operations
type RatingHandler struct {
	ratingUC rating.RatingUC
}

// NewRatingHandler creates a new rating HTTP handler
func NewRatingHandler(ratingUC rating.RatingUC) *RatingHandler {
	return &RatingHandler{
		ratingUC: ratingUC,
	}
}

// SubmitReviewBody is the request body for submitting a review
type SubmitReviewBody struct {
	MechanicID string `json:"mechanic_id"`
	Rating     int    `json:"rating"`
	Review     string `json:"review,omitempty"`
}

// SubmitReview handles POST /reviews
func (h *RatingHandler) SubmitReview(c echo.Context) error {
	identity := middleware.IdentityFromContext(c)
	if identity == nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var body SubmitReviewBody
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	review, err := h.ratingUC.SubmitReview(c.Request().Context(), &models.Review{
		UserID:     identity.ID,
		UserName:   identity.Name,
		MechanicID: body.MechanicID,
		Rating:     body.Rating,
		Review:     body.Review,
	})
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "review submitted", review)
}

// ListByMechanic handles GET /mechanics/:mechanicID/reviews
func (h *RatingHandler) ListByMechanic(c echo.Context) error {
	mechanicID := c.Param("mechanicID")

	reviews, err := h.ratingUC.ListByMechanic(c.Request().Context(), mechanicID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	if reviews == nil {
		reviews = []*models.Review{}
	}
	return utils.SuccessResponse(c, http.StatusOK, "reviews found", reviews)
}

// GetSummary handles GET /mechanics/:mechanicID/rating
func (h *RatingHandler) GetSummary(c echo.Context) error {
	mechanicID := c.Param("mechanicID")

	summary, err := h.ratingUC.GetSummary(c.Request().Context(), mechanicID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "rating summary", summary)
}
