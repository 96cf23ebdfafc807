package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis keeps values for ttl after their last write. Zero ttl keeps them forever.
type Redis struct {
	c   *redis.Client
	ttl time.Duration
}

var _ Store = (*Redis)(nil)

func NewRedis(ctx context.Context, addr, password string, db int, ttl time.Duration) (*Redis, error) {
	c := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	err := c.Ping(ctx).Err()
	if err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &Redis{c: c, ttl: ttl}, nil
}

func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	v, err := r.c.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}

		return "", fmt.Errorf("redis get: %w", err)
	}

	return v, nil
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	err := r.c.Set(ctx, key, value, r.ttl).Err()
	if err != nil {
		return fmt.Errorf("redis set: %w", err)
	}

	return nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	err := r.c.Del(ctx, key).Err()
	if err != nil {
		return fmt.Errorf("redis del: %w", err)
	}

	return nil
}

func (r *Redis) Close() error {
	return r.c.Close()
}
