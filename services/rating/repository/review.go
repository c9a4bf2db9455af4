package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/montirku/montirku/internal/pkg/constants"
	"github.com/montirku/montirku/internal/pkg/database"
	"github.com/montirku/montirku/internal/pkg/errs"
	"github.com/montirku/montirku/internal/pkg/models"
)

// RatingRepo implements the rating repository against MongoDB. Reviews are
// immutable documents; the mechanic's aggregate lives as a running sum and
// count on the mechanic document itself.
type RatingRepo struct {
	cfg       *models.Config
	reviews   *mongo.Collection
	mechanics *mongo.Collection
}

// NewRatingRepository creates a new rating repository
func NewRatingRepository(cfg *models.Config, mongoClient *database.MongoClient) *RatingRepo {
	return &RatingRepo{
		cfg:       cfg,
		reviews:   mongoClient.Collection(constants.CollectionReviews),
		mechanics: mongoClient.Collection(constants.CollectionUsers),
	}
}

// CreateReview inserts an immutable review document
func (r *RatingRepo) CreateReview(ctx context.Context, review *models.Review) error {
	if _, err := r.reviews.InsertOne(ctx, review); err != nil {
		return errs.Transient("failed to insert review", err)
	}
	return nil
}

// ApplyRating folds a rating into the mechanic's aggregate. The increment
// is a single document write, so concurrent submissions never lose an
// update and the derived average stays exact.
func (r *RatingRepo) ApplyRating(ctx context.Context, mechanicID string, rating int) error {
	filter := bson.M{"_id": mechanicID, "role": models.RoleMechanic}
	update := bson.M{"$inc": bson.M{
		"rating_sum":   int64(rating),
		"rating_count": int64(1),
	}}

	result, err := r.mechanics.UpdateOne(ctx, filter, update)
	if err != nil {
		return errs.Transient("failed to apply rating", err)
	}
	if result.MatchedCount == 0 {
		return errs.NotFoundf("mechanic %s not found", mechanicID)
	}

	return nil
}

// ListByMechanic retrieves a mechanic's reviews, newest first
func (r *RatingRepo) ListByMechanic(ctx context.Context, mechanicID string) ([]*models.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.reviews.Find(ctx, bson.M{"mechanic_id": mechanicID}, opts)
	if err != nil {
		return nil, errs.Transient("failed to find reviews", err)
	}
	defer cursor.Close(ctx)

	var reviews []*models.Review
	for cursor.Next(ctx) {
		var review models.Review
		if err := cursor.Decode(&review); err != nil {
			return nil, errs.Transient("failed to decode review", err)
		}
		reviews = append(reviews, &review)
	}
	if err := cursor.Err(); err != nil {
		return nil, errs.Transient("cursor error", err)
	}

	return reviews, nil
}

// GetSummary derives the rating summary from the stored sum and count
func (r *RatingRepo) GetSummary(ctx context.Context, mechanicID string) (models.RatingSummary, error) {
	filter := bson.M{"_id": mechanicID, "role": models.RoleMechanic}

	var profile models.MechanicProfile
	err := r.mechanics.FindOne(ctx, filter).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.RatingSummary{}, errs.NotFoundf("mechanic %s not found", mechanicID)
		}
		return models.RatingSummary{}, errs.Transient("failed to find mechanic", err)
	}

	return profile.Rating(), nil
}
