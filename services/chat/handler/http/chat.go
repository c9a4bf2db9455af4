package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/montirku/montirku/internal/pkg/middleware"
	"github.com/montirku/montirku/internal/pkg/models"
	"github.com/montirku/montirku/internal/utils"
	"github.com/montirku/montirku/services/chat"
)

// ChatHandler handles HTTP requests for chat operations
type ChatHandler struct {
	chatUC chat.ChatUC
}

// NewChatHandler creates a new chat HTTP handler
func NewChatHandler(chatUC chat.ChatUC) *ChatHandler {
	return &ChatHandler{
		chatUC: chatUC,
	}
}

// SendMessageBody is the request body for sending a chat message
type SendMessageBody struct {
	RecipientID string `json:"recipient_id"`
	Message     string `json:"message"`
}

// SendMessage handles POST /chats
func (h *ChatHandler) SendMessage(c echo.Context) error {
	identity := middleware.IdentityFromContext(c)
	if identity == nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var body SendMessageBody
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	message, err := h.chatUC.SendMessage(c.Request().Context(), identity, body.RecipientID, body.Message)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "message sent", message)
}

// History handles GET /chats/:otherID
func (h *ChatHandler) History(c echo.Context) error {
	identity := middleware.IdentityFromContext(c)
	if identity == nil {
		return utils.UnauthorizedResponse(c, "")
	}

	messages, err := h.chatUC.History(c.Request().Context(), identity.ID, c.Param("otherID"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	if messages == nil {
		messages = []*models.ChatMessage{}
	}
	return utils.SuccessResponse(c, http.StatusOK, "chat history", messages)
}
