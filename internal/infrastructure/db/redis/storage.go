package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/globalcargo/cargo-console/internal/core/domain"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "cargo-console:"

// Storage keeps console state in Redis.
// Key format: cargo-console:<key>
type Storage struct {
	client *redis.Client
}

// NewStorage creates a Storage wrapping the given Redis client.
func NewStorage(client *redis.Client) *Storage {
	return &Storage{client: client}
}

func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrStorageKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return b, nil
}

// Set replaces the stored value. Entries never expire; the session lives
// until logout.
func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Storage) key(key string) string {
	return keyPrefix + key
}
