package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const existsTTL = 10 * time.Minute

// UserExistsCache fronts the username-existence lookup with Redis so the
// gateway's pre-registration probe does not hit the database on every
// attempt. Only positive results are cached: a "taken" username stays taken,
// while an absent one may be registered at any moment.
// Key format: user:exists:<username>
type UserExistsCache struct {
	client *redis.Client
}

// NewUserExistsCache wraps the given Redis client.
func NewUserExistsCache(client *redis.Client) *UserExistsCache {
	return &UserExistsCache{client: client}
}

// Lookup reports whether the username is cached as taken.
func (c *UserExistsCache) Lookup(ctx context.Context, username string) (bool, error) {
	n, err := c.client.Exists(ctx, c.key(username)).Result()
	if err != nil {
		return false, fmt.Errorf("exists cache lookup: %w", err)
	}
	return n > 0, nil
}

// MarkTaken records that the username is taken (expires after existsTTL).
func (c *UserExistsCache) MarkTaken(ctx context.Context, username string) error {
	return c.client.Set(ctx, c.key(username), "1", existsTTL).Err()
}

func (c *UserExistsCache) key(username string) string {
	return "user:exists:" + username
}
