package directory

import (
	"context"

	"github.com/montirku/montirku/internal/pkg/models"
)

// DirectoryUC defines the interface for mechanic directory business logic
type DirectoryUC interface {
	FindNearby(ctx context.Context, origin models.Location, radiusKm float64, filter models.NearbyFilter) ([]*models.NearbyMechanic, error)

	// FindNearbyAvailable answers from the geo index of online mechanics
	// instead of scanning profiles. The index is eventually consistent with
	// the availability flag.
	FindNearbyAvailable(ctx context.Context, origin models.Location, radiusKm float64) ([]*models.NearbyMechanic, error)
	GetMechanic(ctx context.Context, mechanicID string) (*models.MechanicProfile, error)
	SetAvailability(ctx context.Context, mechanicID string, available bool) error
	UpdateLocation(ctx context.Context, mechanicID string, location models.Location) error
}
