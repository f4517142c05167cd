package kv

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore 将键值对保存为 Redis 字符串
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore 使用已有的 redis 客户端创建 RedisStore
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

// Get 实现 Store
func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	v, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", err
	}
	return v, nil
}

// Set 实现 Store，不设置过期时间
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	return s.rdb.Set(ctx, key, value, 0).Err()
}

// Delete 实现 Store，多键 DEL 在 Redis 中是原子的
func (s *RedisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.rdb.Del(ctx, keys...).Err()
}

// Close 关闭 redis 客户端
func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
