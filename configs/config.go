package configs

import (
	"log"
	"sync"

	"github.com/caarlos0/env/v11"
)

// AppConfig holds the application configuration.
// It's populated once by LoadConfig.
var AppConfig Configuration
var once sync.Once

// 存储后端
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Configuration defines the structure for application settings.
type Configuration struct {
	ServerPort      string `env:"SERVER_PORT" envDefault:"8080"`
	GinMode         string `env:"GIN_MODE" envDefault:"debug"`
	FrontendBaseURL string `env:"FRONTEND_BASE_URL" envDefault:"http://localhost:5173"` // 前端入口，用于 CORS 和二维码
	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"en"`

	StorageBackend   string `env:"STORAGE_BACKEND" envDefault:"sqlite"` // memory / sqlite / redis
	StorageKeyPrefix string `env:"STORAGE_KEY_PREFIX"`
	SQLitePath       string `env:"SQLITE_DB_PATH" envDefault:"data/student_support.db"`
	SQLiteVerbose    bool   `env:"SQLITE_VERBOSE" envDefault:"false"`
	RedisAddr        string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword    string `env:"REDIS_PASSWORD"`
	RedisDB          int    `env:"REDIS_DB" envDefault:"0"`
}

// Parse 从环境变量解析配置并校验存储后端
func Parse() (Configuration, error) {
	var cfg Configuration
	if err := env.Parse(&cfg); err != nil {
		return Configuration{}, err
	}
	switch cfg.StorageBackend {
	case BackendMemory, BackendSQLite, BackendRedis:
	default:
		log.Printf("警告: 未知的存储后端 %q，改用 %s。", cfg.StorageBackend, BackendSQLite)
		cfg.StorageBackend = BackendSQLite
	}
	return cfg, nil
}

// LoadConfig loads configuration from environment variables or defaults.
// It should be called once at application startup.
func LoadConfig() {
	once.Do(func() {
		cfg, err := Parse()
		if err != nil {
			log.Fatalf("加载配置失败: %v", err)
		}
		if cfg.StorageBackend == BackendMemory {
			log.Printf("信息: 使用内存存储，服务重启后数据会丢失。")
		}
		AppConfig = cfg
		log.Printf("应用配置已加载 (port=%s, storage=%s)。", cfg.ServerPort, cfg.StorageBackend)
	})
}
