package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/montirku/montirku/internal/pkg/constants"
	"github.com/montirku/montirku/internal/pkg/database"
	"github.com/montirku/montirku/internal/pkg/errs"
	"github.com/montirku/montirku/internal/pkg/models"
)

// DirectoryRepo implements the directory repository against MongoDB for
// profiles and Redis for the availability geo index
type DirectoryRepo struct {
	cfg         *models.Config
	collection  *mongo.Collection
	redisClient *database.RedisClient
}

// NewDirectoryRepository creates a new directory repository
func NewDirectoryRepository(
	cfg *models.Config,
	mongoClient *database.MongoClient,
	redisClient *database.RedisClient,
) *DirectoryRepo {
	return &DirectoryRepo{
		cfg:         cfg,
		collection:  mongoClient.Collection(constants.CollectionUsers),
		redisClient: redisClient,
	}
}

// GetMechanic retrieves a mechanic profile by ID
func (r *DirectoryRepo) GetMechanic(ctx context.Context, mechanicID string) (*models.MechanicProfile, error) {
	filter := bson.M{"_id": mechanicID, "role": models.RoleMechanic}

	var profile models.MechanicProfile
	err := r.collection.FindOne(ctx, filter).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NotFoundf("mechanic %s not found", mechanicID)
		}
		return nil, errs.Transient("failed to find mechanic", err)
	}

	return &profile, nil
}

// ListMechanics retrieves all mechanic profiles
func (r *DirectoryRepo) ListMechanics(ctx context.Context) ([]*models.MechanicProfile, error) {
	return r.listMechanics(ctx, bson.M{"role": models.RoleMechanic})
}

// ListMechanicsInCells retrieves mechanic profiles whose stored geohash
// falls inside one of the given cells
func (r *DirectoryRepo) ListMechanicsInCells(ctx context.Context, geohashCells []string) ([]*models.MechanicProfile, error) {
	filter := bson.M{
		"role":    models.RoleMechanic,
		"geohash": bson.M{"$in": geohashCells},
	}
	return r.listMechanics(ctx, filter)
}

func (r *DirectoryRepo) listMechanics(ctx context.Context, filter bson.M) ([]*models.MechanicProfile, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, errs.Transient("failed to find mechanics", err)
	}
	defer cursor.Close(ctx)

	var mechanics []*models.MechanicProfile
	for cursor.Next(ctx) {
		var profile models.MechanicProfile
		if err := cursor.Decode(&profile); err != nil {
			return nil, errs.Transient("failed to decode mechanic", err)
		}
		mechanics = append(mechanics, &profile)
	}
	if err := cursor.Err(); err != nil {
		return nil, errs.Transient("cursor error", err)
	}

	return mechanics, nil
}

// UpdateAvailability flips the availability flag of a mechanic
func (r *DirectoryRepo) UpdateAvailability(ctx context.Context, mechanicID string, available bool) error {
	filter := bson.M{"_id": mechanicID, "role": models.RoleMechanic}
	update := bson.M{"$set": bson.M{
		"available":  available,
		"updated_at": time.Now(),
	}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return errs.Transient("failed to update availability", err)
	}
	if result.MatchedCount == 0 {
		return errs.NotFoundf("mechanic %s not found", mechanicID)
	}

	return nil
}

// UpdateLocation stores a mechanic's new position and its geohash
func (r *DirectoryRepo) UpdateLocation(ctx context.Context, mechanicID string, location models.Location, geohash string) error {
	filter := bson.M{"_id": mechanicID, "role": models.RoleMechanic}
	update := bson.M{"$set": bson.M{
		"location":   location,
		"geohash":    geohash,
		"updated_at": time.Now(),
	}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return errs.Transient("failed to update location", err)
	}
	if result.MatchedCount == 0 {
		return errs.NotFoundf("mechanic %s not found", mechanicID)
	}

	return nil
}

// AddAvailableMechanic adds the mechanic to the Redis geo index so radius
// queries over currently available mechanics stay cheap
func (r *DirectoryRepo) AddAvailableMechanic(ctx context.Context, mechanicID string, location models.Location) error {
	err := r.redisClient.GeoAdd(ctx, constants.KeyMechanicGeo, location.Longitude, location.Latitude, mechanicID)
	if err != nil {
		return errs.Transient("failed to add mechanic to geo index", err)
	}
	return nil
}

// RemoveAvailableMechanic removes the mechanic from the Redis geo index
func (r *DirectoryRepo) RemoveAvailableMechanic(ctx context.Context, mechanicID string) error {
	err := r.redisClient.ZRem(ctx, constants.KeyMechanicGeo, mechanicID)
	if err != nil {
		return errs.Transient("failed to remove mechanic from geo index", err)
	}
	return nil
}

// SearchAvailableNear queries the geo index for available mechanics within
// the radius, nearest first
func (r *DirectoryRepo) SearchAvailableNear(ctx context.Context, origin models.Location, radiusKm float64) ([]models.GeoHit, error) {
	locations, err := r.redisClient.GeoRadius(ctx, constants.KeyMechanicGeo, origin.Longitude, origin.Latitude, radiusKm, "km")
	if err != nil {
		return nil, errs.Transient("failed to query geo index", err)
	}

	hits := make([]models.GeoHit, 0, len(locations))
	for _, loc := range locations {
		hits = append(hits, models.GeoHit{
			MechanicID: loc.Name,
			DistanceKm: loc.Dist,
		})
	}
	return hits, nil
}
