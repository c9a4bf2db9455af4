package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/montirku/montirku/internal/pkg/constants"
	"github.com/montirku/montirku/internal/pkg/database"
	"github.com/montirku/montirku/internal/pkg/errs"
	"github.com/montirku/montirku/internal/pkg/models"
)

// IdentityRepo implements the account repository against MongoDB
type IdentityRepo struct {
	cfg           *models.Config
	users         *mongo.Collection
	notifications *mongo.Collection
}

// NewIdentityRepository creates a new account repository
func NewIdentityRepository(cfg *models.Config, mongoClient *database.MongoClient) *IdentityRepo {
	return &IdentityRepo{
		cfg:           cfg,
		users:         mongoClient.Collection(constants.CollectionUsers),
		notifications: mongoClient.Collection(constants.CollectionNotifications),
	}
}

// CreateUser inserts a new account document
func (r *IdentityRepo) CreateUser(ctx context.Context, user *models.User) error {
	if _, err := r.users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errs.Validation("an account with this email already exists")
		}
		return errs.Transient("failed to insert user", err)
	}
	return nil
}

// GetUser retrieves an account by ID
func (r *IdentityRepo) GetUser(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	err := r.users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NotFoundf("user %s not found", userID)
		}
		return nil, errs.Transient("failed to find user", err)
	}
	return &user, nil
}

// GetUserByEmail retrieves an account by email
func (r *IdentityRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NotFound("no account with this email")
		}
		return nil, errs.Transient("failed to find user", err)
	}
	return &user, nil
}

// RecordLogin stamps the account's last login time
func (r *IdentityRepo) RecordLogin(ctx context.Context, userID string) error {
	update := bson.M{"$set": bson.M{"last_login": time.Now()}}
	if _, err := r.users.UpdateOne(ctx, bson.M{"_id": userID}, update); err != nil {
		return errs.Transient("failed to record login", err)
	}
	return nil
}

// ListNotifications retrieves a user's notifications, newest first
func (r *IdentityRepo) ListNotifications(ctx context.Context, userID string) ([]*models.Notification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.notifications.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, errs.Transient("failed to find notifications", err)
	}
	defer cursor.Close(ctx)

	var notifications []*models.Notification
	for cursor.Next(ctx) {
		var notification models.Notification
		if err := cursor.Decode(&notification); err != nil {
			return nil, errs.Transient("failed to decode notification", err)
		}
		notifications = append(notifications, &notification)
	}
	if err := cursor.Err(); err != nil {
		return nil, errs.Transient("cursor error", err)
	}

	return notifications, nil
}

// MarkNotificationRead marks one of the user's notifications as read. The
// user ID is part of the filter so nobody can flip another user's feed.
func (r *IdentityRepo) MarkNotificationRead(ctx context.Context, userID, notificationID string) error {
	filter := bson.M{"_id": notificationID, "user_id": userID}
	update := bson.M{"$set": bson.M{"read": true}}

	result, err := r.notifications.UpdateOne(ctx, filter, update)
	if err != nil {
		return errs.Transient("failed to mark notification read", err)
	}
	if result.MatchedCount == 0 {
		return errs.NotFoundf("notification %s not found", notificationID)
	}

	return nil
}
