package chat

import (
	"context"

	"github.com/montirku/montirku/internal/pkg/models"
)

// ChatRepo defines the interface for chat message data access
type ChatRepo interface {
	SaveMessage(ctx context.Context, message *models.ChatMessage) error

	// ListMessages returns a room's history in chronological order
	ListMessages(ctx context.Context, roomID string) ([]*models.ChatMessage, error)
}
