package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// connectTimeout bounds the startup connectivity check.
const connectTimeout = 5 * time.Second

// Config holds the connection settings for the Redis instance backing the
// verification and revocation token stores.
type Config struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// Connect opens a client against cfg.Addr and proves it reachable with a
// ping before handing it to the token stores. cfg.Timeout bounds the ping
// and falls back to connectTimeout when unset.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = connectTimeout
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}
