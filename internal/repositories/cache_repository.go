package repositories

import (
	"context"
	"time"
)

// CacheRepositoryInterface cobre os dois usos de cache do sistema: permissões
// por usuário e contadores de tentativa de login.
type CacheRepositoryInterface interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Increment(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, ttl time.Duration) error
	Exists(ctx context.Context, key string) (bool, error)
}
