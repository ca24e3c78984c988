// Package cache provides a Redis-backed cache for generated identity
// profiles. Generation fans out to several backends, so a short TTL cache
// takes most of the read load off them.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jonesrussell/profiler/internal/domain"
)

// DefaultTTL bounds how stale a cached profile may be. New feedback
// invalidates eagerly, so the TTL only covers conversation drift.
const DefaultTTL = 15 * time.Minute

const keyPrefix = "profile:"

// ErrMiss is returned when no cached profile exists for the user.
var ErrMiss = errors.New("profile not in cache")

// ProfileCache caches identity profiles by user id.
type ProfileCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a profile cache. A non-positive TTL selects DefaultTTL.
func New(client *redis.Client, ttl time.Duration) *ProfileCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ProfileCache{client: client, ttl: ttl}
}

// Get returns the cached profile for a user, or ErrMiss.
func (c *ProfileCache) Get(ctx context.Context, userID string) (*domain.IdentityProfile, error) {
	data, err := c.client.Get(ctx, keyPrefix+userID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var profile domain.IdentityProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return &profile, nil
}

// Set stores a profile under the configured TTL.
func (c *ProfileCache) Set(ctx context.Context, profile *domain.IdentityProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Set(ctx, keyPrefix+profile.UserID, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Invalidate drops the cached profile for a user. Called whenever new
// feedback lands, since feedback changes the fusion result.
func (c *ProfileCache) Invalidate(ctx context.Context, userID string) error {
	if err := c.client.Del(ctx, keyPrefix+userID).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}

// Ping verifies the Redis connection for health checks.
func (c *ProfileCache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}
