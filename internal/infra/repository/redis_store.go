package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/salon-scheduler/internal/store"
)

var _ store.Store = (*RedisStore)(nil)

// RedisStore keeps each collection under "<prefix>:<collection>".
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "salon"
	}
	return &RedisStore{client: client, prefix: prefix}
}

// OpenRedis parses a redis:// URL and checks the connection.
func OpenRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func (s *RedisStore) key(c store.Collection) string {
	return s.prefix + ":" + string(c)
}

func (s *RedisStore) Load(ctx context.Context, c store.Collection) ([]byte, error) {
	b, err := s.client.Get(ctx, s.key(c)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", c, err)
	}
	return b, nil
}

func (s *RedisStore) Save(ctx context.Context, c store.Collection, payload []byte) error {
	if err := s.client.Set(ctx, s.key(c), payload, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", c, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, c store.Collection) error {
	if err := s.client.Del(ctx, s.key(c)).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", c, err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
