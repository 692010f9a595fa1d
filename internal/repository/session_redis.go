package repository

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	customError "github.com/lendly/loan-tracker/pkg/errors"
)

const sessionKeyPrefix = "loantracker:session:"

// redisSessionRepository persists the logged-in flag in Redis, the only
// durable store the application touches.
type redisSessionRepository struct {
	client *redis.Client
}

func NewRedisSessionRepository(client *redis.Client) SessionRepository {
	return &redisSessionRepository{client: client}
}

func (r *redisSessionRepository) Put(ctx context.Context, token string, ttl time.Duration) error {
	if err := r.client.Set(ctx, sessionKeyPrefix+token, "1", ttl).Err(); err != nil {
		return customError.WrapCacheError(err)
	}
	return nil
}

func (r *redisSessionRepository) Exists(ctx context.Context, token string) (bool, error) {
	err := r.client.Get(ctx, sessionKeyPrefix+token).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, customError.WrapCacheError(err)
	}
	return true, nil
}

func (r *redisSessionRepository) Delete(ctx context.Context, token string) error {
	if err := r.client.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return customError.WrapCacheError(err)
	}
	return nil
}
