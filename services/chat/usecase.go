package chat

import (
	"context"

	"github.com/montirku/montirku/internal/pkg/models"
)

// ChatUC defines the interface for chat business logic
type ChatUC interface {
	SendMessage(ctx context.Context, sender *models.Identity, recipientID, text string) (*models.ChatMessage, error)
	History(ctx context.Context, requesterID, otherID string) ([]*models.ChatMessage, error)
}
