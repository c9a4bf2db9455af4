package identity

import (
	"context"

	"github.com/montirku/montirku/internal/pkg/models"
)

// IdentityUC defines the interface for account business logic
type IdentityUC interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)

	// CurrentUser resolves a user ID to its identity, preferring the cache
	// and reconciling it from the store on a miss
	CurrentUser(ctx context.Context, userID string) (*models.Identity, error)

	ListNotifications(ctx context.Context, userID string) ([]*models.Notification, error)
	MarkNotificationRead(ctx context.Context, userID, notificationID string) error
}
