// Package kv 定义了求助记录持久化所用的键值存储接口及其实现。
//
// 每个键保存一段文本 (JSON)。实现需保证单键读写的原子性，
// Delete 对传入的多个键整体原子生效。
package kv

import (
	"context"
	"errors"
)

// ErrNotFound 表示键不存在
var ErrNotFound = errors.New("kv: key not found")

// Store 是注入到仓库层的键值后端
type Store interface {
	// Get 返回键对应的值，键不存在时返回 ErrNotFound
	Get(ctx context.Context, key string) (string, error)
	// Set 写入或覆盖键对应的值
	Set(ctx context.Context, key, value string) error
	// Delete 原子地删除给定的键，不存在的键不视为错误
	Delete(ctx context.Context, keys ...string) error
	// Close 释放底层连接
	Close() error
}
