package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/montirku/montirku/internal/pkg/middleware"
	"github.com/montirku/montirku/internal/pkg/models"
	"github.com/montirku/montirku/services/chat"
	httpHandler "github.com/montirku/montirku/services/chat/handler/http"
)

// Handler combines all handlers for the chat service
type Handler struct {
	chatHTTP *httpHandler.ChatHandler
}

// NewHandler creates a new combined handler
func NewHandler(chatUC chat.ChatUC) *Handler {
	return &Handler{
		chatHTTP: httpHandler.NewChatHandler(chatUC),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, jwtConfig models.JWTConfig) {
	chats := e.Group("/chats", middleware.JWTAuthMiddleware(jwtConfig))
	chats.POST("", h.chatHTTP.SendMessage)
	chats.GET("/:otherID", h.chatHTTP.History)
}
