package usecase

import (
	"context"
	"sort"

	"github.com/montirku/montirku/internal/pkg/errs"
	"github.com/montirku/montirku/internal/pkg/logger"
	"github.com/montirku/montirku/internal/pkg/models"
	"github.com/montirku/montirku/internal/utils"
)

// FindNearby returns mechanics within radiusKm of the origin, filtered and
// sorted nearest first. Filters apply in a fixed order: radius cut, minimum
// rating, service intersection, availability.
func (uc *DirectoryUC) FindNearby(ctx context.Context, origin models.Location, radiusKm float64, filter models.NearbyFilter) ([]*models.NearbyMechanic, error) {
	if !origin.Valid() {
		return nil, errs.Validation("origin coordinates out of range")
	}
	radiusKm, err := uc.normalizeRadius(radiusKm)
	if err != nil {
		return nil, err
	}
	if filter.MinRating < 0 || filter.MinRating > 5 {
		return nil, errs.Validation("min_rating must be between 0 and 5")
	}
	for _, service := range filter.Services {
		if !models.ServiceType(service).Valid() {
			return nil, errs.Validationf("unknown service type: %s", service)
		}
	}

	candidates, err := uc.candidates(ctx, origin, radiusKm)
	if err != nil {
		return nil, err
	}

	return uc.applyFilters(origin, radiusKm, filter, candidates), nil
}

func (uc *DirectoryUC) normalizeRadius(radiusKm float64) (float64, error) {
	if radiusKm < 0 {
		return 0, errs.Validation("radius must not be negative")
	}
	if radiusKm == 0 {
		radiusKm = uc.cfg.Directory.DefaultRadiusKm
	}
	if radiusKm > uc.cfg.Directory.MaxRadiusKm {
		radiusKm = uc.cfg.Directory.MaxRadiusKm
	}
	return radiusKm, nil
}

func (uc *DirectoryUC) applyFilters(origin models.Location, radiusKm float64, filter models.NearbyFilter, candidates []*models.MechanicProfile) []*models.NearbyMechanic {

	originPoint := utils.GeoPointFromLocation(origin)

	var nearby []*models.NearbyMechanic
	for _, mechanic := range candidates {
		if !mechanic.Location.Valid() {
			continue
		}

		distance := utils.DistanceKm(originPoint, utils.GeoPointFromLocation(mechanic.Location))
		if distance > radiusKm {
			continue
		}

		rating := mechanic.Rating()
		if filter.MinRating > 0 && rating.Average < filter.MinRating {
			continue
		}
		if !mechanic.OffersAny(filter.Services) {
			continue
		}
		if filter.AvailableOnly && !mechanic.Available {
			continue
		}

		nearby = append(nearby, &models.NearbyMechanic{
			MechanicProfile: *mechanic,
			Rating:          rating,
			DistanceKm:      distance,
		})
	}

	// Nearest first, with IDs breaking ties so results are deterministic
	sort.Slice(nearby, func(i, j int) bool {
		if nearby[i].DistanceKm != nearby[j].DistanceKm {
			return nearby[i].DistanceKm < nearby[j].DistanceKm
		}
		return nearby[i].ID < nearby[j].ID
	})

	logger.Debug("Nearby mechanics search completed",
		logger.Int("candidates", len(candidates)),
		logger.Int("matched", len(nearby)),
		logger.Float64("radius_km", radiusKm))

	return nearby
}

// FindNearbyAvailable answers radius queries from the geo index of online
// mechanics. Index distances come from Redis; each hit is hydrated into a
// full profile, and stale entries for mechanics that went offline or were
// removed are dropped from the result.
func (uc *DirectoryUC) FindNearbyAvailable(ctx context.Context, origin models.Location, radiusKm float64) ([]*models.NearbyMechanic, error) {
	if !origin.Valid() {
		return nil, errs.Validation("origin coordinates out of range")
	}
	radiusKm, err := uc.normalizeRadius(radiusKm)
	if err != nil {
		return nil, err
	}

	hits, err := uc.directoryRepo.SearchAvailableNear(ctx, origin, radiusKm)
	if err != nil {
		return nil, err
	}

	nearby := make([]*models.NearbyMechanic, 0, len(hits))
	for _, hit := range hits {
		mechanic, err := uc.directoryRepo.GetMechanic(ctx, hit.MechanicID)
		if err != nil {
			if errs.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		if !mechanic.Available {
			continue
		}

		nearby = append(nearby, &models.NearbyMechanic{
			MechanicProfile: *mechanic,
			Rating:          mechanic.Rating(),
			DistanceKm:      hit.DistanceKm,
		})
	}

	return nearby, nil
}

// candidates narrows the scan with the geohash prefilter when the radius
// fits inside a cell-plus-neighbors cover, otherwise scans every mechanic
func (uc *DirectoryUC) candidates(ctx context.Context, origin models.Location, radiusKm float64) ([]*models.MechanicProfile, error) {
	precision := uc.cfg.Directory.GeohashPrecision
	if precision > 0 && radiusKm <= utils.CellWidthKm(precision) {
		cells := utils.CoverRadius(origin, precision)
		return uc.directoryRepo.ListMechanicsInCells(ctx, cells)
	}
	return uc.directoryRepo.ListMechanics(ctx)
}

// GetMechanic retrieves a single mechanic profile
func (uc *DirectoryUC) GetMechanic(ctx context.Context, mechanicID string) (*models.MechanicProfile, error) {
	if mechanicID == "" {
		return nil, errs.Validation("mechanic ID is required")
	}
	return uc.directoryRepo.GetMechanic(ctx, mechanicID)
}

// SetAvailability flips a mechanic's availability flag and keeps the Redis
// geo index of available mechanics in sync
func (uc *DirectoryUC) SetAvailability(ctx context.Context, mechanicID string, available bool) error {
	if mechanicID == "" {
		return errs.Validation("mechanic ID is required")
	}

	if err := uc.directoryRepo.UpdateAvailability(ctx, mechanicID, available); err != nil {
		return err
	}

	if available {
		mechanic, err := uc.directoryRepo.GetMechanic(ctx, mechanicID)
		if err != nil {
			return err
		}
		if !mechanic.Location.Valid() {
			// No known position yet; the index catches up on the next
			// location update
			return nil
		}
		return uc.directoryRepo.AddAvailableMechanic(ctx, mechanicID, mechanic.Location)
	}

	return uc.directoryRepo.RemoveAvailableMechanic(ctx, mechanicID)
}

// UpdateLocation stores a mechanic's new position together with its geohash
// and refreshes the geo index entry when the mechanic is available
func (uc *DirectoryUC) UpdateLocation(ctx context.Context, mechanicID string, location models.Location) error {
	if mechanicID == "" {
		return errs.Validation("mechanic ID is required")
	}
	if !location.Valid() {
		return errs.Validation("coordinates out of range")
	}

	geohash := utils.EncodeLocation(location, uc.cfg.Directory.GeohashPrecision)
	if err := uc.directoryRepo.UpdateLocation(ctx, mechanicID, location, geohash); err != nil {
		return err
	}

	mechanic, err := uc.directoryRepo.GetMechanic(ctx, mechanicID)
	if err != nil {
		return err
	}
	if mechanic.Available {
		return uc.directoryRepo.AddAvailableMechanic(ctx, mechanicID, location)
	}

	return nil
}
