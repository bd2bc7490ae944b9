package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/campusclubs/clubdeck/internal/adapters/secondary/redis/session"
)

type Options struct {
	Host       string
	Port       string
	Password   string
	SessionTTL time.Duration
}

// Client bundles the redis connection with the per-concern storages built on
// top of it.
type Client struct {
	rdb *redis.Client

	Sessions *session.Storage
}

func New(opts Options) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", opts.Host, opts.Port),
		Password: opts.Password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &Client{
		rdb:      rdb,
		Sessions: session.NewStorage(rdb, opts.SessionTTL),
	}, nil
}

func (c *Client) Close() error {
	return c.rdb.Close()
}
