package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"art_academy/internal/storage"
)

const keyPrefix = "art_academy:"

type Client struct {
	*redis.Client
}

func NewClient(addr, password string, db int) *Client {
	return &Client{
		Client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

// Wrap adopts an already configured client.
func Wrap(c *redis.Client) *Client {
	return &Client{Client: c}
}

func (c *Client) HealthCheck(ctx context.Context) error {
	return c.Ping(ctx).Err()
}

func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	const op = "storage.redis.Get"

	data, err := c.Client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNoSuchKey)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return data, nil
}

// Set stores the value without expiration.
func (c *Client) Set(ctx context.Context, key string, value []byte) error {
	const op = "storage.redis.Set"

	if err := c.Client.Set(ctx, keyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (c *Client) Remove(ctx context.Context, key string) error {
	const op = "storage.redis.Remove"

	if err := c.Client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (c *Client) Close() error {
	return c.Client.Close()
}
