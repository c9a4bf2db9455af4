package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/montirku/montirku/internal/pkg/errs"
	"github.com/montirku/montirku/internal/pkg/logger"
	"github.com/montirku/montirku/internal/pkg/models"
)

// SubmitReview validates and stores a review, then folds the rating into
// the mechanic's aggregate. The aggregate update runs first: a review
// without an applied rating would silently skew the average, while the
// reverse at worst leaves one rating without its text.
func (uc *RatingUC) SubmitReview(ctx context.Context, review *models.Review) (*models.Review, error) {
	if review.UserID == "" {
		return nil, errs.Validation("user ID is required")
	}
	if review.MechanicID == "" {
		return nil, errs.Validation("mechanic ID is required")
	}
	if review.Rating < 1 || review.Rating > 5 {
		return nil, errs.Validation("rating must be between 1 and 5")
	}

	review.ID = uuid.New().String()
	review.CreatedAt = models.Now()

	if err := uc.ratingRepo.ApplyRating(ctx, review.MechanicID, review.Rating); err != nil {
		return nil, err
	}

	if err := uc.ratingRepo.CreateReview(ctx, review); err != nil {
		return nil, err
	}

	logger.Info("Review submitted",
		logger.String("review_id", review.ID),
		logger.String("mechanic_id", review.MechanicID),
		logger.Int("rating", review.Rating))

	return review, nil
}

// ListByMechanic retrieves a mechanic's reviews, newest first
func (uc *RatingUC) ListByMechanic(ctx context.Context, mechanicID string) ([]*models.Review, error) {
	if mechanicID == "" {
		return nil, errs.Validation("mechanic ID is required")
	}
	return uc.ratingRepo.ListByMechanic(ctx, mechanicID)
}

// GetSummary returns the mechanic's derived rating summary
func (uc *RatingUC) GetSummary(ctx context.Context, mechanicID string) (models.RatingSummary, error) {
	if mechanicID == "" {
		return models.RatingSummary{}, errs.Validation("mechanic ID is required")
	}
	return uc.ratingRepo.GetSummary(ctx, mechanicID)
}
