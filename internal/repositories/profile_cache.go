package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lynkr/lynkr-backend/internal/logger"
	"github.com/lynkr/lynkr-backend/internal/models"
	"github.com/redis/go-redis/v9"
)

// ProfileCacheRepository caches rendered public profiles by username in
// Redis. The cache is advisory: every error degrades to a database read.
type ProfileCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached profiles
}

// NewProfileCacheRepository creates a new repository instance with the given TTL
func NewProfileCacheRepository(client *redis.Client, expiration time.Duration) *ProfileCacheRepository {
	return &ProfileCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func profileKey(username string) string {
	return fmt.Sprintf("profile:%s", username)
}

// Get fetches a cached profile. Returns nil on a cache miss.
func (r *ProfileCacheRepository) Get(ctx context.Context, username string) (*models.Profile, error) {
	key := profileKey(username)

	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		logger.Log.Infow("profile cache read",
			"key", key,
			"error", err,
		)
		return nil, err
	}

	var profile models.Profile
	if err := json.Unmarshal([]byte(val), &profile); err != nil {
		logger.Log.Infow("profile cache decode",
			"key", key,
			"error", err,
		)
		return nil, err
	}

	return &profile, nil
}

// Set caches a profile with the repository's expiration.
func (r *ProfileCacheRepository) Set(ctx context.Context, username string, profile *models.Profile) error {
	key := profileKey(username)

	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("profile cache write",
		"key", key,
		"error", err,
	)

	return err
}

// Delete drops a cached profile, e.g. after the username is claimed or
// the profile is edited.
func (r *ProfileCacheRepository) Delete(ctx context.Context, username string) error {
	key := profileKey(username)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("profile cache delete",
		"key", key,
		"error", err,
	)

	return err
}
