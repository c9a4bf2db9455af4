package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/montirku/montirku/internal/pkg/middleware"
	"github.com/montirku/montirku/internal/pkg/models"
	"github.com/montirku/montirku/internal/utils"
	"github.com/montirku/montirku/services/request"
)

// RequestHandler handles HTTP requests for service request operations
type RequestHandler struct {
	requestUC request.RequestUC
}

// NewRequestHandler creates a new service request HTTP handler
func NewRequestHandler(requestUC request.RequestUC) *RequestHandler {
	return &RequestHandler{
		requestUC: requestUC,
	}
}

// CreateRequestBody is the request body for creating a service request
type CreateRequestBody struct {
	MechanicID     string                `json:"mechanic_id"`
	Latitude       float64               `json:"latitude"`
	Longitude      float64               `json:"longitude"`
	Address        string                `json:"address"`
	VehicleDetails models.VehicleDetails `json:"vehicle_details"`
	ServiceType    models.ServiceType    `json:"service_type"`
	Description    string                `json:"description"`
}

// CreateRequest handles POST /requests
func (h *RequestHandler) CreateRequest(c echo.Context) error {
	identity := middleware.IdentityFromContext(c)
	if identity == nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var body CreateRequestBody
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	req := &models.ServiceRequest{
		RequesterID:    identity.ID,
		RequesterName:  identity.Name,
		RequesterPhone: identity.Phone,
		MechanicID:     body.MechanicID,
		Location: models.Location{
			Latitude:  body.Latitude,
			Longitude: body.Longitude,
			Timestamp: models.Now(),
		},
		Address:        body.Address,
		VehicleDetails: body.VehicleDetails,
		ServiceType:    body.ServiceType,
		Description:    body.Description,
	}

	created, err := h.requestUC.CreateRequest(c.Request().Context(), req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "service request created", created)
}

// GetRequest handles GET /requests/:requestID
func (h *RequestHandler) GetRequest(c echo.Context) error {
	identity := middleware.IdentityFromContext(c)
	if identity == nil {
		return utils.UnauthorizedResponse(c, "")
	}

	req, err := h.requestUC.GetRequest(c.Request().Context(), c.Param("requestID"), identity)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "service request found", req)
}

// TransitionBody is the request body for status transitions
type TransitionBody struct {
	Status models.RequestStatus `json:"status"`
	Notes  string               `json:"notes,omitempty"`
}

// Transition handles POST /requests/:requestID/status
func (h *RequestHandler) Transition(c echo.Context) error {
	identity := middleware.IdentityFromContext(c)
	if identity == nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var body TransitionBody
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	updated, err := h.requestUC.Transition(c.Request().Context(), models.TransitionRequest{
		RequestID: c.Param("requestID"),
		ActorID:   identity.ID,
		ActorRole: identity.Role,
		NewStatus: body.Status,
		Notes:     body.Notes,
	})
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "status updated", updated)
}

// ListMine handles GET /requests, returning the caller's own requests.
// Customers see the requests they created, mechanics the ones assigned to
// them.
func (h *RequestHandler) ListMine(c echo.Context) error {
	identity := middleware.IdentityFromContext(c)
	if identity == nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var (
		requests []*models.ServiceRequest
		err      error
	)
	if identity.Role == models.RoleMechanic {
		requests, err = h.requestUC.ListByMechanic(c.Request().Context(), identity.ID)
	} else {
		requests, err = h.requestUC.ListByRequester(c.Request().Context(), identity.ID)
	}
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	if requests == nil {
		requests = []*models.ServiceRequest{}
	}
	return utils.SuccessResponse(c, http.StatusOK, "service requests found", requests)
}
