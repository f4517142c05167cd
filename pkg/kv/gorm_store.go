package kv

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/student_support/internal/models"
)

// GormStore 将每个键保存为 kv_entries 表中的一行
type GormStore struct {
	db *gorm.DB
}

// NewGormStore 创建一个新的 GormStore 实例，db 需已迁移 kv_entries 表
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Get 实现 Store
func (s *GormStore) Get(ctx context.Context, key string) (string, error) {
	var entry models.KVEntry
	err := s.db.WithContext(ctx).Where("entry_key = ?", key).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return entry.Value, nil
}

// Set 实现 Store，键已存在时覆盖
func (s *GormStore) Set(ctx context.Context, key, value string) error {
	entry := models.KVEntry{Key: key, Value: value}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

// Delete 实现 Store，所有键在同一事务中删除
func (s *GormStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, k := range keys {
			if err := tx.Where("entry_key = ?", k).Delete(&models.KVEntry{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Close 关闭底层数据库连接
func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
