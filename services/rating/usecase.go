package rating

import (
	"context"

	"github.com/montirku/montirku/internal/pkg/models"
)

// RatingUC defines the interface for review and rating business logic
type RatingUC interface {
	SubmitReview(ctx context.Context, review *models.Review) (*models.Review, error)
	ListByMechanic(ctx context.Context, mechanicID string) ([]*models.Review, error)
	GetSummary(ctx context.Context, mechanicID string) (models.RatingSummary, error)
}
