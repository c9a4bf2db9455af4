package gateway

import (
	"context"
	"fmt"

	"github.com/montirku/montirku/internal/pkg/constants"
	"github.com/montirku/montirku/internal/pkg/errs"
	natspkg "github.com/montirku/montirku/internal/pkg/nats"
	"github.com/montirku/montirku/internal/pkg/models"
)

// ChatGW fans live messages out over NATS, one subject per room
type ChatGW struct {
	natsClient *natspkg.Client
}

// NewChatGW creates a new chat gateway
func NewChatGW(natsClient *natspkg.Client) *ChatGW {
	return &ChatGW{natsClient: natsClient}
}

// PublishMessage publishes the message to the room's subject
func (g *ChatGW) PublishMessage(_ context.Context, message *models.ChatMessage) error {
	subject := fmt.Sprintf(constants.SubjectChatRoom, message.RoomID)
	if err := g.natsClient.PublishJSON(subject, message); err != nil {
		return errs.Transient("failed to publish chat message", err)
	}
	return nil
}
