package cache

import (
	"context"
	"time"

	"github.com/LucaDevAr/futcuervo-backend/internal/pkg/redis"
)

// Store is the key/value backend the read-through cache writes to.
// Implementations must treat a missing key as ("", nil).
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPrefix(ctx context.Context, prefix string) (int, error)
}

// RedisStore backs the cache with the shared redis client.
type RedisStore struct{}

func NewRedisStore() *RedisStore {
	return &RedisStore{}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	return redis.GetValue(ctx, key)
}

func (s *RedisStore) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return redis.SetWithExpiration(ctx, key, value, ttl)
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return redis.DeleteKey(ctx, key)
}

func (s *RedisStore) DeleteByPrefix(ctx context.Context, prefix string) (int, error) {
	return redis.DeleteByPrefix(ctx, prefix)
}
