package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/montirku/montirku/internal/pkg/middleware"
	"github.com/montirku/montirku/internal/pkg/models"
	"github.com/montirku/montirku/internal/utils"
	"github.com/montirku/montirku/services/identity"
)

// IdentityHandler handles HTTP requests for account operations
type IdentityHandler struct {
	identityUC identity.IdentityUC
}

// NewIdentityHandler creates a new account HTTP handler
func NewIdentityHandler(identityUC identity.IdentityUC) *IdentityHandler {
	return &IdentityHandler{
		identityUC: identityUC,
	}
}

// Register handles POST /auth/register
func (h *IdentityHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	resp, err := h.identityUC.Register(c.Request().Context(), &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "account created", resp)
}

// Login handles POST /auth/login
func (h *IdentityHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	resp, err := h.identityUC.Login(c.Request().Context(), &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "login successful", resp)
}

// Me handles GET /auth/me
func (h *IdentityHandler) Me(c echo.Context) error {
	identity := middleware.IdentityFromContext(c)
	if identity == nil {
		return utils.UnauthorizedResponse(c, "")
	}

	resolved, err := h.identityUC.CurrentUser(c.Request().Context(), identity.ID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "current user", resolved)
}

// ListNotifications handles GET /notifications
func (h *IdentityHandler) ListNotifications(c echo.Context) error {
	identity := middleware.IdentityFromContext(c)
	if identity == nil {
		return utils.UnauthorizedResponse(c, "")
	}

	notifications, err := h.identityUC.ListNotifications(c.Request().Context(), identity.ID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	if notifications == nil {
		notifications = []*models.Notification{}
	}
	return utils.SuccessResponse(c, http.StatusOK, "notifications found", notifications)
}

// MarkNotificationRead handles POST /notifications/:notificationID/read
func (h *IdentityHandler) MarkNotificationRead(c echo.Context) error {
	identity := middleware.IdentityFromContext(c)
	if identity == nil {
		return utils.UnauthorizedResponse(c, "")
	}

	err := h.identityUC.MarkNotificationRead(c.Request().Context(), identity.ID, c.Param("notificationID"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "notification marked read", nil)
}
