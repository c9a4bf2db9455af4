package chat

import (
	"context"

	"github.com/montirku/montirku/internal/pkg/models"
)

// ChatGW defines the interface for live message fan-out
type ChatGW interface {
	PublishMessage(ctx context.Context, message *models.ChatMessage) error
}
