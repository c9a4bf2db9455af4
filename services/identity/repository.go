package identity

import (
	"context"

	"github.com/montirku/montirku/internal/pkg/models"
)

// IdentityRepo defines the interface for account data access
type IdentityRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	RecordLogin(ctx context.Context, userID string) error

	ListNotifications(ctx context.Context, userID string) ([]*models.Notification, error)
	MarkNotificationRead(ctx context.Context, userID, notificationID string) error
}

// IdentityCache defines the interface for the resolved-identity cache. It
// shadows the users collection with a short TTL so repeated lookups during
// an active session stay off Mongo.
type IdentityCache interface {
	Store(ctx context.Context, identity *models.Identity) error
	Fetch(ctx context.Context, userID string) (*models.Identity, error)
	Invalidate(ctx context.Context, userID string) error
}
