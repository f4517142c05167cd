package db

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/student_support/internal/models"
)

// DefaultDbFile 是未配置 SQLITE_DB_PATH 时使用的数据库文件
const DefaultDbFile = "data/student_support.db"

// Open 打开 GORM SQLite 数据库连接并迁移 kv_entries 表
// dbPath 为空时使用 DefaultDbFile；verbose 为 true 时输出 SQL 日志
func Open(dbPath string, verbose bool) (*gorm.DB, error) {
	if dbPath == "" {
		dbPath = DefaultDbFile
		log.Printf("Database path not set, using default database path: %s", dbPath)
	}

	// 确保数据库文件所在的目录存在
	dbDir := filepath.Dir(dbPath)
	if _, err := os.Stat(dbDir); os.IsNotExist(err) {
		log.Printf("Database directory %s does not exist, creating it...", dbDir)
		if mkErr := os.MkdirAll(dbDir, 0755); mkErr != nil {
			return nil, fmt.Errorf("create database directory %s: %w", dbDir, mkErr)
		}
	}

	logLevel := logger.Warn
	if verbose {
		logLevel = logger.Info
	}
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             time.Second, // 慢 SQL 阈值
			LogLevel:                  logLevel,
			IgnoreRecordNotFoundError: true, // 缺失的键是正常情况
			Colorful:                  false,
		},
	)

	gormDB, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database %s: %w", dbPath, err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("get underlying sql.DB from GORM: %w", err)
	}

	// SQLite 单写者，连接数不宜过多
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetMaxOpenConns(4)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Printf("Successfully connected to database using GORM: %s", dbPath)

	if err := gormDB.AutoMigrate(&models.KVEntry{}); err != nil {
		return nil, fmt.Errorf("auto migrate database tables: %w", err)
	}
	log.Println("Database tables migrated successfully.")
	return gormDB, nil
}
