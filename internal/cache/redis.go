package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const viewKeyPrefix = "views:seen:"

type RedisClient struct {
	client *redis.Client
}

// NewRedisClient connects to redisURL and verifies the connection.
func NewRedisClient(ctx context.Context, redisURL string) (*RedisClient, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{client: client}, nil
}

func NewRedisClientFrom(client *redis.Client) *RedisClient {
	return &RedisClient{client: client}
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

func (r *RedisClient) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// ViewDeduper decides whether a page view should be counted.
type ViewDeduper interface {
	FirstView(ctx context.Context, resource, visitor string) (bool, error)
}

// RedisViewDeduper counts one view per visitor per resource within Window.
type RedisViewDeduper struct {
	redis  *RedisClient
	Window time.Duration
}

func NewRedisViewDeduper(r *RedisClient, window time.Duration) *RedisViewDeduper {
	return &RedisViewDeduper{redis: r, Window: window}
}

// FirstView records the visit and reports whether it is the first one inside
// the window.
func (d *RedisViewDeduper) FirstView(ctx context.Context, resource, visitor string) (bool, error) {
	key := fmt.Sprintf("%s%s:%s", viewKeyPrefix, resource, visitor)
	ok, err := d.redis.client.SetNX(ctx, key, 1, d.Window).Result()
	if err != nil {
		return false, fmt.Errorf("failed to record view in Redis: %w", err)
	}
	return ok, nil
}

// NoopViewDeduper counts every view. Used when Redis is not configured.
type NoopViewDeduper struct{}

func (NoopViewDeduper) FirstView(context.Context, string, string) (bool, error) {
	return true, nil
}
