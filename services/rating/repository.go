package rating

import (
	"context"

	"github.com/montirku/montirku/internal/pkg/models"
)

// RatingRepo defines the interface for review and rating data access
type RatingRepo interface {
	CreateReview(ctx context.Context, review *models.Review) error

	// ApplyRating folds one rating into the mechanic's running sum and
	// count in a single atomic increment
	ApplyRating(ctx context.Context, mechanicID string, rating int) error

	ListByMechanic(ctx context.Context, mechanicID string) ([]*models.Review, error)
	GetSummary(ctx context.Context, mechanicID string) (models.RatingSummary, error)
}
