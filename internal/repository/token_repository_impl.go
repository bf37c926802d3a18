package repository

import (
	"context"
	"time"

	domainRepo "mediconnect/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

type tokenRepository struct {
	redisClient *redis.Client
}

func NewTokenRepository(redisClient *redis.Client) domainRepo.TokenRepository {
	return &tokenRepository{redisClient: redisClient}
}

func (r *tokenRepository) Store(ctx context.Context, key string, ttl time.Duration) error {
	return r.redisClient.Set(ctx, key, "1", ttl).Err()
}

func (r *tokenRepository) Exists(ctx context.Context, key string) (bool, error) {
	n, err := r.redisClient.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *tokenRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.redisClient.Del(ctx, keys...).Err()
}
