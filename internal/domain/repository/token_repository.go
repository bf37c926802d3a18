package repository

import (
	"context"
	"time"
)

// TokenRepository tracks issued token ids so logout can revoke them
type TokenRepository interface {
	Store(ctx context.Context, key string, ttl time.Duration) error
	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, keys ...string) error
}
