// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/studysync/backend/internal/application/adapter"
)

// defaultOverviewTTL is how long cached overview payloads stay valid.
const defaultOverviewTTL = 5 * time.Minute

// redisOverviewCache implements the adapter.OverviewCache interface on Redis.
type redisOverviewCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisOverviewCache creates a new overview cache backed by the given Redis client.
func NewRedisOverviewCache(client *redis.Client, ttl time.Duration) adapter.OverviewCache {
	if ttl <= 0 {
		ttl = defaultOverviewTTL
	}
	return &redisOverviewCache{
		client: client,
		ttl:    ttl,
	}
}

// Get retrieves the cached payload for a user's view. Returns ok=false on miss.
func (c *redisOverviewCache) Get(ctx context.Context, userID uuid.UUID, view string) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, overviewKey(userID, view)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return payload, true, nil
}

// Set stores the payload for a user's view with the cache's TTL.
func (c *redisOverviewCache) Set(ctx context.Context, userID uuid.UUID, view string, payload []byte) error {
	return c.client.Set(ctx, overviewKey(userID, view), payload, c.ttl).Err()
}

// Invalidate drops all cached views for a user.
func (c *redisOverviewCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	pattern := fmt.Sprintf("overview:%s:*", userID)
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// overviewKey builds the cache key for a user's view.
func overviewKey(userID uuid.UUID, view string) string {
	return fmt.Sprintf("overview:%s:%s", userID, view)
}
