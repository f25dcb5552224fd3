package app

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/atomicstack/tmux-bookmark-popup/internal/kv"
)

func TestOpenStoreMemory(t *testing.T) {
	store, err := openStore(Config{Store: kv.Options{Backend: kv.BackendMemory}})
	if err != nil {
		t.Fatalf("open memory store: %v", err)
	}
	defer store.Close()
	ctx := context.Background()
	if err := store.Set(ctx, map[string][]byte{"language": []byte(`"de"`)}); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := store.Get(ctx, "language")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got["language"]) != `"de"` {
		t.Fatalf("unexpected value %q", got["language"])
	}
}

func TestOpenStoreSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")
	store, err := openStore(Config{Store: kv.Options{Backend: kv.BackendSQLite, Path: path}})
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestOpenStoreRejectsUnknownBackend(t *testing.T) {
	_, err := openStore(Config{Store: kv.Options{Backend: "etcd"}})
	if !errors.Is(err, kv.ErrUnsupportedBackend) {
		t.Fatalf("expected unsupported backend error, got %v", err)
	}
}

func TestStoreLocation(t *testing.T) {
	redis := kv.Options{Backend: kv.BackendRedis, Redis: kv.RedisOptions{Address: "127.0.0.1:6379", Prefix: "bm:"}}
	if got := storeLocation(redis); got != "127.0.0.1:6379/bm:" {
		t.Fatalf("unexpected redis location %q", got)
	}
	if got := storeLocation(kv.Options{Backend: kv.BackendSQLite, Path: "/tmp/x.db"}); got != "/tmp/x.db" {
		t.Fatalf("unexpected sqlite location %q", got)
	}
	if got := storeLocation(kv.Options{Backend: kv.BackendMemory}); got != "memory" {
		t.Fatalf("unexpected memory location %q", got)
	}
}
