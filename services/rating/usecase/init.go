package usecase

import (
	"github.com/montirku/montirku/internal/pkg/models"
	"github.com/montirku/montirku/services/rating"
)

// RatingUC implements the rating use case interface
type RatingUC struct {
	cfg        *models.Config
	ratingRepo rating.RatingRepo
}

// NewRatingUC creates a new rating use case
func NewRatingUC(cfg *models.Config, ratingRepo rating.RatingRepo) *RatingUC {
	return &RatingUC{
		cfg:        cfg,
		ratingRepo: ratingRepo,
	}
}
