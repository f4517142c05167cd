package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/student_support/configs"
	"github.com/student_support/pkg/db"
	"github.com/student_support/pkg/kv"
)

// openStore 按 STORAGE_BACKEND 创建键值存储
func openStore(ctx context.Context, cfg configs.Configuration) (kv.Store, error) {
	switch cfg.StorageBackend {
	case configs.BackendMemory:
		return kv.NewMemoryStore(), nil
	case configs.BackendRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			rdb.Close()
			return nil, fmt.Errorf("连接 Redis %s 失败: %w", cfg.RedisAddr, err)
		}
		log.Printf("已连接 Redis: %s (db %d)", cfg.RedisAddr, cfg.RedisDB)
		return kv.NewRedisStore(rdb), nil
	default:
		gormDB, err := db.Open(cfg.SQLitePath, cfg.SQLiteVerbose)
		if err != nil {
			return nil, err
		}
		return kv.NewGormStore(gormDB), nil
	}
}
