package models

import "time"

// KVEntry 对应于数据库中的 kv_entries 表，每个键保存一段文本
type KVEntry struct {
	Key       string    `gorm:"column:entry_key;primaryKey;size:255"`
	Value     string    `gorm:"column:value;type:text;not null"`
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName 指定 KVEntry 结构体对应的数据库表名
func (KVEntry) TableName() string {
	return "kv_entries"
}
