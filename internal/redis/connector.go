// Package redis connects the shell to an optional shared Redis used as an
// external-API response cache. Unlike the managers' file stores, Redis is
// never required: when it is unreachable the shell runs on the in-memory
// cache instead.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sulemanahsancui/quran-pak/internal/logger"
)

// ConnectOptions defines Redis connection settings.
type ConnectOptions struct {
	Addr         string        // Redis address (ex: "localhost:6379")
	User         string        // optional username
	Password     string        // optional password
	DB           int           // Redis DB number
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolSize     int
	PingTimeout  time.Duration // timeout for the startup ping
}

// New opens a client and verifies connectivity with one ping. Callers treat
// an error as "run without Redis", not as fatal.
func New(opts ConnectOptions, log logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Username:     opts.User,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  opts.DialTimeout,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		PoolSize:     opts.PoolSize,
	})

	pingTimeout := opts.PingTimeout
	if pingTimeout <= 0 {
		pingTimeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	log.Info("connected to redis", logger.String("addr", opts.Addr))
	return client, nil
}
