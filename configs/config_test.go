package configs

import (
	"os"
	"testing"
)

func TestParseDefaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "STORAGE_BACKEND", "FRONTEND_BASE_URL"} {
		t.Setenv(key, "")
		os.Unsetenv(key) // t.Setenv 负责测试结束后恢复
	}
	cfg, err := Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.ServerPort != "8080" || cfg.StorageBackend != BackendSQLite || cfg.FrontendBaseURL != "http://localhost:5173" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestParseOverridesAndUnknownBackend(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("STORAGE_BACKEND", "cassandra")
	cfg, err := Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.ServerPort != "9090" || cfg.RedisDB != 3 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.StorageBackend != BackendSQLite {
		t.Fatalf("unknown backend should fall back to sqlite, got %s", cfg.StorageBackend)
	}
}

func TestParseInvalidInt(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")
	if _, err := Parse(); err == nil {
		t.Fatal("expected parse error for REDIS_DB")
	}
}
