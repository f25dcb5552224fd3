// Package kv provides the key-value stores the popup persists its state in.
//
// A Store behaves like a synced extension storage area: Get takes a list of
// keys and returns only the ones present, Set merges a partial mapping into
// the existing state. Values are opaque bytes; callers encode them as JSON.
package kv

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

var (
	// ErrUnsupportedBackend is returned by Open for unknown backend names.
	ErrUnsupportedBackend = errors.New("unsupported storage backend")
	// ErrClosed is returned by operations on a closed store.
	ErrClosed = errors.New("store closed")
)

// Store is the key-value collaborator used by the bookmark service.
type Store interface {
	Get(ctx context.Context, keys ...string) (map[string][]byte, error)
	Set(ctx context.Context, values map[string][]byte) error
	Close() error
}

// Options selects and configures a backend.
type Options struct {
	Backend string
	// Path is the SQLite database file.
	Path  string
	Redis RedisOptions
}

// RedisOptions configures the Redis backend.
type RedisOptions struct {
	Address     string
	Password    string `json:"-"`
	DB          int
	Prefix      string
	DialTimeout time.Duration
}

// Backends lists the names Open understands.
func Backends() []string {
	return []string{BackendSQLite, BackendRedis, BackendMemory}
}

// Open creates the configured backend.
func Open(ctx context.Context, opts Options) (Store, error) {
	backend := strings.ToLower(strings.TrimSpace(opts.Backend))
	switch backend {
	case BackendMemory:
		return NewMemory(), nil
	case BackendSQLite, "":
		return OpenSQLite(ctx, opts.Path)
	case BackendRedis:
		return OpenRedis(ctx, opts.Redis)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedBackend, opts.Backend)
	}
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	dup := make([]byte, len(b))
	copy(dup, b)
	return dup
}

func sortedKeys(values map[string][]byte) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
