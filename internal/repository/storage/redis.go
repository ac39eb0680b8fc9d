package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type RedisStorage struct {
	Connection *redis.Client
}

func NewRedisStorage(ctx context.Context, addr string) (*RedisStorage, error) {
	conn := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	_, err := conn.Ping(ctx).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStorage{Connection: conn}, nil
}

// NewRedisStorageWithClient - wraps an already connected client.
func NewRedisStorageWithClient(client *redis.Client) *RedisStorage {
	return &RedisStorage{Connection: client}
}

func (that *RedisStorage) Get(ctx context.Context, key string) (string, error) {
	value, err := that.Connection.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}

	if err != nil {
		return "", fmt.Errorf("failed to get %s: %w", key, err)
	}

	return value, nil
}

func (that *RedisStorage) Set(ctx context.Context, key, value string) error {
	if err := that.Connection.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	return nil
}

func (that *RedisStorage) Close() error {
	return that.Connection.Close()
}
