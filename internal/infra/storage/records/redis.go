package records

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore реализация Store поверх Redis.
// Значения хранятся как обычные строки без TTL - хранилище долговременное.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore создает Store поверх Redis
func NewRedisStore(addr, password string, db int) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

// Ping проверяет соединение с Redis
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close закрывает соединение с Redis
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Get возвращает значение по ключу
func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: redis get %s: %v", ErrRead, key, err)
	}
	return value, true, nil
}

// Set сохраняет значение по ключу
func (s *RedisStore) Set(ctx context.Context, key string, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("%w: redis set %s: %v", ErrWrite, key, err)
	}
	return nil
}
