// Package clearance answers whether a student is financially cleared to sit exams.
// The flag is owned by the finance subsystem; this package only reads it.
package clearance

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type Lookup interface {
	IsCleared(ctx context.Context, studentID string) (bool, error)
}

const keyPrefix = "cbt:clearance:"

// KV is the subset of the go-redis client the cache needs.
type KV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Cache is a read-through Redis cache in front of another Lookup. Redis failures
// fall through to the backing lookup; they never produce a "cleared" answer.
type Cache struct {
	rdb     KV
	backing Lookup
	ttl     time.Duration
}

func NewCache(rdb KV, backing Lookup, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Cache{rdb: rdb, backing: backing, ttl: ttl}
}

func (c *Cache) IsCleared(ctx context.Context, studentID string) (bool, error) {
	key := keyPrefix + studentID

	val, err := c.rdb.Get(ctx, key).Result()
	switch {
	case err == nil:
		return val == "1", nil
	case errors.Is(err, redis.Nil):
	default:
		log.Warn().Err(err).Str("studentID", studentID).Msg("Clearance cache read failed, using store")
	}

	cleared, err := c.backing.IsCleared(ctx, studentID)
	if err != nil {
		return false, err
	}

	encoded := "0"
	if cleared {
		encoded = "1"
	}
	if err := c.rdb.Set(ctx, key, encoded, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("studentID", studentID).Msg("Clearance cache write failed")
	}
	return cleared, nil
}

// Invalidate drops the cached flag so the next lookup reads the store.
func (c *Cache) Invalidate(ctx context.Context, studentID string) error {
	return c.rdb.Del(ctx, keyPrefix+studentID).Err()
}
