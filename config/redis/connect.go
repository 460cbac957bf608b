package redis

import (
	"context"
	"fmt"

	"pdb-srv/config"
	"pdb-srv/pkg/redis"
)

// Connect builds and verifies a Redis client. The returned handle is owned
// by the caller and must be closed via Disconnect on shutdown; no
// package-level state is kept.
func Connect(ctx context.Context, cfg config.RedisConfig) (redis.IRedis, error) {
	client, err := redis.NewRedis(redis.RedisConfig{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Redis client: %w", err)
	}

	if err := client.Ping(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}
	return client, nil
}

// Disconnect closes the client. Safe to call with nil.
func Disconnect(client redis.IRedis) error {
	if client == nil {
		return nil
	}
	return client.Close()
}
