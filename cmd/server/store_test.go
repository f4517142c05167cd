package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/student_support/configs"
	"github.com/student_support/pkg/kv"
)

func TestOpenStoreMemory(t *testing.T) {
	store, err := openStore(context.Background(), configs.Configuration{StorageBackend: configs.BackendMemory})
	if err != nil {
		t.Fatalf("openStore: %v", err)
	}
	defer store.Close()
	if _, ok := store.(*kv.MemoryStore); !ok {
		t.Fatalf("expected *kv.MemoryStore, got %T", store)
	}
}

func TestOpenStoreSQLite(t *testing.T) {
	cfg := configs.Configuration{
		StorageBackend: configs.BackendSQLite,
		SQLitePath:     filepath.Join(t.TempDir(), "data", "test.db"),
	}
	store, err := openStore(context.Background(), cfg)
	if err != nil {
		t.Fatalf("openStore: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got, err := store.Get(ctx, "k"); err != nil || got != "v" {
		t.Fatalf("Get = %q, %v", got, err)
	}
}

func TestOpenStoreRedisUnreachable(t *testing.T) {
	cfg := configs.Configuration{
		StorageBackend: configs.BackendRedis,
		RedisAddr:      "127.0.0.1:1",
	}
	if _, err := openStore(context.Background(), cfg); err == nil {
		t.Fatal("expected error for unreachable redis")
	}
}
