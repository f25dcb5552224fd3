package kv

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/tmux-bookmark-popup/internal/testutil"
)

// exerciseStore runs the shared contract every backend must satisfy.
func exerciseStore(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	got, err := store.Get(ctx, "bookmarks", "language")
	require.NoError(t, err)
	assert.Empty(t, got, "fresh store should report no keys")

	require.NoError(t, store.Set(ctx, map[string][]byte{
		"bookmarks": []byte(`[]`),
		"language":  []byte(`"en"`),
	}))

	require.NoError(t, store.Set(ctx, map[string][]byte{"language": []byte(`"hu"`)}))

	got, err = store.Get(ctx, "bookmarks", "language", "missing")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got["bookmarks"], "partial set must keep untouched keys")
	assert.Equal(t, []byte(`"hu"`), got["language"])
	_, present := got["missing"]
	assert.False(t, present)

	got, err = store.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemory())
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	value := []byte(`"en"`)
	require.NoError(t, m.Set(ctx, map[string][]byte{"language": value}))
	value[1] = 'x'

	got, err := m.Get(ctx, "language")
	require.NoError(t, err)
	assert.Equal(t, `"en"`, string(got["language"]))

	got["language"][1] = 'y'
	again, err := m.Get(ctx, "language")
	require.NoError(t, err)
	assert.Equal(t, `"en"`, string(again["language"]))
}

func TestMemoryStoreClosed(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Close())
	_, err := m.Get(context.Background(), "bookmarks")
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, m.Set(context.Background(), map[string][]byte{"a": nil}), ErrClosed)
}

func TestMemoryStoreHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewMemory().Get(ctx, "bookmarks")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "store.db")
	store, err := OpenSQLite(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	assert.Equal(t, path, store.Path())
	exerciseStore(t, store)
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.db")

	first, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, map[string][]byte{"language": []byte(`"de"`)}))
	require.NoError(t, first.Close())

	second, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { second.Close() })
	got, err := second.Get(ctx, "language")
	require.NoError(t, err)
	assert.Equal(t, `"de"`, string(got["language"]))
}

func TestRedisStore(t *testing.T) {
	addr := testutil.RequireRedis(t)
	prefix := "tmux-bookmark-popup-test:" + filepath.Base(t.TempDir()) + ":"
	store, err := OpenRedis(context.Background(), RedisOptions{Address: addr, Prefix: prefix})
	require.NoError(t, err)
	t.Cleanup(func() {
		store.client.Del(context.Background(), prefix+"bookmarks", prefix+"language")
		store.Close()
	})
	exerciseStore(t, store)
}

func TestOpenSelectsBackend(t *testing.T) {
	ctx := context.Background()

	store, err := Open(ctx, Options{Backend: "Memory"})
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, store)

	store, err = Open(ctx, Options{Backend: BackendSQLite, Path: filepath.Join(t.TempDir(), "s.db")})
	require.NoError(t, err)
	assert.IsType(t, &SQLite{}, store)
	require.NoError(t, store.Close())

	_, err = Open(ctx, Options{Backend: "etcd"})
	assert.ErrorIs(t, err, ErrUnsupportedBackend)
}

func TestWithTracePassesThrough(t *testing.T) {
	ctx := context.Background()
	inner := NewMemory()
	store := WithTrace(inner, BackendMemory)
	require.NoError(t, store.Set(ctx, map[string][]byte{"language": []byte(`"es"`)}))
	got, err := inner.Get(ctx, "language")
	require.NoError(t, err)
	assert.Equal(t, `"es"`, string(got["language"]))

	require.NoError(t, store.Close())
	_, err = store.Get(ctx, "language")
	assert.ErrorIs(t, err, ErrClosed)

	assert.Nil(t, WithTrace(nil, BackendMemory))
}
