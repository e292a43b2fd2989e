package repository

import (
	"context"
	"strings"

	"github.com/go-redis/redis/v8"
	"github.com/reshetovitsme/rss-telegram-notifier/internal/shared/errors"
	"github.com/samber/oops"
)

// RedisStorage keeps the last link under a single Redis key
type RedisStorage struct {
	client *redis.Client
	key    string
}

// RedisOptions configures the Redis state repository
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Key      string
}

// NewRedisStorage connects to Redis and verifies the connection with PING
func NewRedisStorage(ctx context.Context, opts RedisOptions) (*RedisStorage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, oops.With("redis_addr", opts.Addr, "context", "failed to connect to redis").Wrap(err)
	}

	return &RedisStorage{client: client, key: opts.Key}, nil
}

func (s *RedisStorage) GetLastLink(ctx context.Context) (string, error) {
	link, err := s.client.Get(ctx, s.key).Result()
	if err == redis.Nil {
		return "", errors.ErrStateNotFound
	}
	if err != nil {
		return "", oops.With("redis_key", s.key, "context", "failed to read last link").Wrap(err)
	}

	link = strings.TrimSpace(link)
	if link == "" {
		return "", errors.ErrStateNotFound
	}
	return link, nil
}

func (s *RedisStorage) SaveLastLink(ctx context.Context, link string) error {
	if err := s.client.Set(ctx, s.key, link, 0).Err(); err != nil {
		return oops.With("redis_key", s.key, "context", "failed to save last link").Wrap(err)
	}
	return nil
}

// Close releases the Redis connection pool
func (s *RedisStorage) Close() error {
	return s.client.Close()
}
