package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sulemanahsancui/quran-pak/internal/logger"
)

// keyPrefix namespaces all shell cache entries in a possibly shared Redis.
const keyPrefix = "quranpak:api:"

// Redis is a Cache backed by a shared Redis instance. Failures degrade to
// cache misses; the external API is always the fallback.
type Redis struct {
	client *redis.Client
	logger logger.Logger
}

func NewRedis(client *redis.Client, log logger.Logger) *Redis {
	return &Redis{client: client, logger: log}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := r.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Warn("redis cache get failed",
				logger.String("key", key),
				logger.Error(err))
		}
		return nil, false
	}
	return data, true
}

func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	if err := r.client.Set(ctx, keyPrefix+key, value, ttl).Err(); err != nil {
		r.logger.Warn("redis cache set failed",
			logger.String("key", key),
			logger.Error(err))
	}
}
