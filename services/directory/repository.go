package directory

import (
	"context"

	"github.com/montirku/montirku/internal/pkg/models"
)

// DirectoryRepo defines the interface for mechanic directory data access
type DirectoryRepo interface {
	// Mechanic profile operations
	GetMechanic(ctx context.Context, mechanicID string) (*models.MechanicProfile, error)
	ListMechanics(ctx context.Context) ([]*models.MechanicProfile, error)
	ListMechanicsInCells(ctx context.Context, geohashCells []string) ([]*models.MechanicProfile, error)
	UpdateAvailability(ctx context.Context, mechanicID string, available bool) error
	UpdateLocation(ctx context.Context, mechanicID string, location models.Location, geohash string) error

	// Redis geo index of currently available mechanics
	AddAvailableMechanic(ctx context.Context, mechanicID string, location models.Location) error
	RemoveAvailableMechanic(ctx context.Context, mechanicID string) error
	SearchAvailableNear(ctx context.Context, origin models.Location, radiusKm float64) ([]models.GeoHit, error)
}
