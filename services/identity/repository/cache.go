package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/montirku/montirku/internal/pkg/constants"
	"github.com/montirku/montirku/internal/pkg/database"
	"github.com/montirku/montirku/internal/pkg/errs"
	"github.com/montirku/montirku/internal/pkg/models"
)

// IdentityCacheRepo implements the identity cache against Redis
type IdentityCacheRepo struct {
	redisClient *database.RedisClient
	ttl         time.Duration
}

// NewIdentityCacheRepository creates a new identity cache
func NewIdentityCacheRepository(cfg *models.Config, redisClient *database.RedisClient) *IdentityCacheRepo {
	ttl := time.Duration(cfg.Identity.CacheTTLSeconds) * time.Second
	if ttl == 0 {
		ttl = 5 * time.Minute
	}
	return &IdentityCacheRepo{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// Store caches a resolved identity under its TTL
func (r *IdentityCacheRepo) Store(ctx context.Context, identity *models.Identity) error {
	data, err := json.Marshal(identity)
	if err != nil {
		return errs.Transient("failed to marshal identity", err)
	}

	key := fmt.Sprintf(constants.KeyIdentity, identity.ID)
	if err := r.redisClient.Set(ctx, key, data, r.ttl); err != nil {
		return errs.Transient("failed to cache identity", err)
	}
	return nil
}

// Fetch returns the cached identity, or nil on a cache miss
func (r *IdentityCacheRepo) Fetch(ctx context.Context, userID string) (*models.Identity, error) {
	key := fmt.Sprintf(constants.KeyIdentity, userID)

	data, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, errs.Transient("failed to read identity cache", err)
	}

	var identity models.Identity
	if err := json.Unmarshal([]byte(data), &identity); err != nil {
		// A corrupt entry behaves like a miss; the store is authoritative
		return nil, nil
	}

	return &identity, nil
}

// Invalidate drops the cached identity
func (r *IdentityCacheRepo) Invalidate(ctx context.Context, userID string) error {
	key := fmt.Sprintf(constants.KeyIdentity, userID)
	if err := r.redisClient.Delete(ctx, key); err != nil {
		return errs.Transient("failed to invalidate identity cache", err)
	}
	return nil
}
