package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/montirku/montirku/internal/pkg/errs"
	"github.com/montirku/montirku/internal/pkg/logger"
	"github.com/montirku/montirku/internal/pkg/models"
	"github.com/montirku/montirku/services/chat"
)

// ChatUC implements the chat use case interface
type ChatUC struct {
	chatRepo chat.ChatRepo
	chatGW   chat.ChatGW
}

// NewChatUC creates a new chat use case
func NewChatUC(chatRepo chat.ChatRepo, chatGW chat.ChatGW) *ChatUC {
	return &ChatUC{
		chatRepo: chatRepo,
		chatGW:   chatGW,
	}
}

// SendMessage stores a message in the pair's room and publishes it for live
// listeners. Publishing is best effort; the stored history is the record.
func (uc *ChatUC) SendMessage(ctx context.Context, sender *models.Identity, recipientID, text string) (*models.ChatMessage, error) {
	if sender == nil || sender.ID == "" {
		return nil, errs.Validation("sender is required")
	}
	if recipientID == "" {
		return nil, errs.Validation("recipient ID is required")
	}
	if recipientID == sender.ID {
		return nil, errs.Validation("cannot chat with yourself")
	}
	if strings.TrimSpace(text) == "" {
		return nil, errs.Validation("message text is required")
	}

	message := &models.ChatMessage{
		ID:         uuid.New().String(),
		RoomID:     models.ChatRoomID(sender.ID, recipientID),
		SenderID:   sender.ID,
		SenderName: sender.Name,
		Message:    text,
		Timestamp:  models.Now(),
	}

	if err := uc.chatRepo.SaveMessage(ctx, message); err != nil {
		return nil, err
	}

	if err := uc.chatGW.PublishMessage(ctx, message); err != nil {
		logger.Warn("Failed to publish chat message",
			logger.String("room_id", message.RoomID),
			logger.Err(err))
	}

	return message, nil
}

// History returns the chronological message history between two users
func (uc *ChatUC) History(ctx context.Context, requesterID, otherID string) ([]*models.ChatMessage, error) {
	if requesterID == "" || otherID == "" {
		return nil, errs.Validation("both participant IDs are required")
	}

	roomID := models.ChatRoomID(requesterID, otherID)
	return uc.chatRepo.ListMessages(ctx, roomID)
}
