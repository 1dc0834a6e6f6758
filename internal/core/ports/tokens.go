package ports

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore is the slice of the Redis client the auth flow depends on.
// *redis.Client satisfies it in production; tests inject an in-memory mock.
type TokenStore interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
}
