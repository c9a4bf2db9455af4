package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/montirku/montirku/internal/pkg/middleware"
	"github.com/montirku/montirku/internal/pkg/models"
	"github.com/montirku/montirku/internal/utils"
	"github.com/montirku/montirku/services/directory"
)

// DirectoryHandler handles HTTP requests for mechanic directory operations
type DirectoryHandler struct {
	directoryUC directory.DirectoryUC
}

// NewDirectoryHandler creates a new directory HTTP handler
func NewDirectoryHandler(directoryUC directory.DirectoryUC) *DirectoryHandler {
	return &DirectoryHandler{
		directoryUC: directoryUC,
	}
}

// FindNearby handles GET /mechanics/nearby
func (h *DirectoryHandler) FindNearby(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "lat is required and must be a number")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "lng is required and must be a number")
	}

	var radiusKm float64
	if raw := c.QueryParam("radius_km"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "radius_km must be a number")
		}
	}

	var filter models.NearbyFilter
	if raw := c.QueryParam("min_rating"); raw != "" {
		filter.MinRating, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "min_rating must be a number")
		}
	}
	if raw := c.QueryParam("services"); raw != "" {
		filter.Services = strings.Split(raw, ",")
	}
	if raw := c.QueryParam("available_only"); raw != "" {
		filter.AvailableOnly, err = strconv.ParseBool(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "available_only must be a boolean")
		}
	}

	origin := models.Location{Latitude: lat, Longitude: lng}

	mechanics, err := h.directoryUC.FindNearby(c.Request().Context(), origin, radiusKm, filter)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	if mechanics == nil {
		mechanics = []*models.NearbyMechanic{}
	}
	return utils.SuccessResponse(c, http.StatusOK, "mechanics found", mechanics)
}

// FindNearbyAvailable handles GET /mechanics/nearby/available
func (h *DirectoryHandler) FindNearbyAvailable(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "lat is required and must be a number")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "lng is required and must be a number")
	}

	var radiusKm float64
	if raw := c.QueryParam("radius_km"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "radius_km must be a number")
		}
	}

	origin := models.Location{Latitude: lat, Longitude: lng}

	mechanics, err := h.directoryUC.FindNearbyAvailable(c.Request().Context(), origin, radiusKm)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	if mechanics == nil {
		mechanics = []*models.NearbyMechanic{}
	}
	return utils.SuccessResponse(c, http.StatusOK, "mechanics found", mechanics)
}

// GetMechanic handles GET /mechanics/:mechanicID
func (h *DirectoryHandler) GetMechanic(c echo.Context) error {
	mechanicID := c.Param("mechanicID")

	mechanic, err := h.directoryUC.GetMechanic(c.Request().Context(), mechanicID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "mechanic found", echo.Map{
		"mechanic": mechanic,
		"rating":   mechanic.Rating(),
	})
}

// AvailabilityRequest is the request body for availability updates
type AvailabilityRequest struct {
	Available bool `json:"available"`
}

// SetAvailability handles PUT /mechanics/me/availability
func (h *DirectoryHandler) SetAvailability(c echo.Context) error {
	identity := middleware.IdentityFromContext(c)
	if identity == nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req AvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.directoryUC.SetAvailability(c.Request().Context(), identity.ID, req.Available); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "availability updated", echo.Map{
		"available": req.Available,
	})
}

// LocationRequest is the request body for location updates
type LocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// UpdateLocation handles PUT /mechanics/me/location
func (h *DirectoryHandler) UpdateLocation(c echo.Context) error {
	identity := middleware.IdentityFromContext(c)
	if identity == nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req LocationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	location := models.Location{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Timestamp: models.Now(),
	}

	if err := h.directoryUC.UpdateLocation(c.Request().Context(), identity.ID, location); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "location updated", location)
}
