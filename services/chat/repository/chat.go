package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/montirku/montirku/internal/pkg/constants"
	"github.com/montirku/montirku/internal/pkg/database"
	"github.com/montirku/montirku/internal/pkg/errs"
	"github.com/montirku/montirku/internal/pkg/models"
)

// ChatRepo implements the chat repository against MongoDB
type ChatRepo struct {
	collection *mongo.Collection
}

// NewChatRepository creates a new chat repository
func NewChatRepository(mongoClient *database.MongoClient) *ChatRepo {
	return &ChatRepo{
		collection: mongoClient.Collection(constants.CollectionChats),
	}
}

// SaveMessage inserts a chat message document
func (r *ChatRepo) SaveMessage(ctx context.Context, message *models.ChatMessage) error {
	if _, err := r.collection.InsertOne(ctx, message); err != nil {
		return errs.Transient("failed to insert chat message", err)
	}
	return nil
}

// ListMessages returns a room's history in chronological order
func (r *ChatRepo) ListMessages(ctx context.Context, roomID string) ([]*models.ChatMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"room_id": roomID}, opts)
	if err != nil {
		return nil, errs.Transient("failed to find chat messages", err)
	}
	defer cursor.Close(ctx)

	var messages []*models.ChatMessage
	for cursor.Next(ctx) {
		var message models.ChatMessage
		if err := cursor.Decode(&message); err != nil {
			return nil, errs.Transient("failed to decode chat message", err)
		}
		messages = append(messages, &message)
	}
	if err := cursor.Err(); err != nil {
		return nil, errs.Transient("cursor error", err)
	}

	return messages, nil
}
