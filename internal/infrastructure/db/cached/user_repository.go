// Package cached decorates the user repository with the Redis
// username-existence cache. Cache trouble never fails a request; it only
// costs the database round-trip it would have saved.
package cached

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/accounthub/account-system/internal/core/domain"
	"github.com/accounthub/account-system/internal/core/ports"
)

// ExistsCache is the cache surface the decorator needs, satisfied by
// redis.UserExistsCache.
type ExistsCache interface {
	Lookup(ctx context.Context, username string) (bool, error)
	MarkTaken(ctx context.Context, username string) error
}

// UserRepository wraps an inner repository, answering Exists from the cache
// when possible. Only positive answers are cached (see redis.UserExistsCache).
type UserRepository struct {
	inner ports.UserRepository
	cache ExistsCache
	log   zerolog.Logger
}

func NewUserRepository(inner ports.UserRepository, cache ExistsCache, log zerolog.Logger) *UserRepository {
	return &UserRepository{inner: inner, cache: cache, log: log}
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.inner.FindByUsername(ctx, username)
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	created, err := r.inner.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	if cacheErr := r.cache.MarkTaken(ctx, created.Username); cacheErr != nil {
		r.log.Warn().Err(cacheErr).Str("username", created.Username).Msg("exists cache mark failed")
	}
	return created, nil
}

func (r *UserRepository) Exists(ctx context.Context, username string) (bool, error) {
	hit, err := r.cache.Lookup(ctx, username)
	if err != nil {
		r.log.Warn().Err(err).Str("username", username).Msg("exists cache lookup failed")
	} else if hit {
		return true, nil
	}

	taken, err := r.inner.Exists(ctx, username)
	if err != nil {
		return false, err
	}
	if taken {
		if cacheErr := r.cache.MarkTaken(ctx, username); cacheErr != nil {
			r.log.Warn().Err(cacheErr).Str("username", username).Msg("exists cache mark failed")
		}
	}
	return taken, nil
}
