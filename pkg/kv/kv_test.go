package kv

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/redis/go-redis/v9"

	"github.com/student_support/pkg/db"
)

// exerciseStore 对任意 Store 实现执行相同的行为校验
func exerciseStore(t *testing.T, s Store, prefix string) {
	t.Helper()
	ctx := context.Background()
	a, b, c := prefix+"a", prefix+"b", prefix+"c"

	if _, err := s.Get(ctx, a); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get missing key: expected ErrNotFound, got %v", err)
	}

	if err := s.Set(ctx, a, "1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Set(ctx, a, "2"); err != nil {
		t.Fatalf("Set overwrite failed: %v", err)
	}
	got, err := s.Get(ctx, a)
	if err != nil || got != "2" {
		t.Fatalf("Get after overwrite: got %q, %v; want \"2\"", got, err)
	}

	if err := s.Set(ctx, b, `["x"]`); err != nil {
		t.Fatalf("Set b failed: %v", err)
	}
	if err := s.Set(ctx, c, "keep"); err != nil {
		t.Fatalf("Set c failed: %v", err)
	}

	if err := s.Delete(ctx, a, b, prefix+"missing"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	for _, k := range []string{a, b} {
		if _, err := s.Get(ctx, k); !errors.Is(err, ErrNotFound) {
			t.Errorf("key %s should be deleted, got err %v", k, err)
		}
	}
	if got, err := s.Get(ctx, c); err != nil || got != "keep" {
		t.Errorf("untouched key changed: got %q, %v", got, err)
	}
	if err := s.Delete(ctx); err != nil {
		t.Errorf("Delete with no keys should be a no-op, got %v", err)
	}
	_ = s.Delete(ctx, c)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore(), "")
}

func TestMemoryStoreCanceledContext(t *testing.T) {
	s := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.Set(ctx, "k", "v"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestGormStore(t *testing.T) {
	gormDB, err := db.Open(filepath.Join(t.TempDir(), "kv.db"), false)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	s := NewGormStore(gormDB)
	defer s.Close()
	exerciseStore(t, s, "")
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("Skipping redis store test: TEST_REDIS_ADDR environment variable not set.")
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		t.Skipf("redis at %s not reachable: %v", addr, err)
	}
	s := NewRedisStore(rdb)
	defer s.Close()
	exerciseStore(t, s, "kvtest:"+strconv.Itoa(os.Getpid())+":")
}
