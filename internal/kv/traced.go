package kv

import (
	"context"
	"time"

	"github.com/atomicstack/tmux-bookmark-popup/internal/logging/events"
)

type traced struct {
	Store
	backend string
}

// WithTrace wraps store so every call emits a storage trace event.
func WithTrace(store Store, backend string) Store {
	if store == nil {
		return nil
	}
	return &traced{Store: store, backend: backend}
}

func (t *traced) Get(ctx context.Context, keys ...string) (map[string][]byte, error) {
	start := time.Now()
	values, err := t.Store.Get(ctx, keys...)
	if err != nil {
		events.Storage.Error(t.backend, err)
		return nil, err
	}
	events.Storage.Get(t.backend, keys, len(values), time.Since(start))
	return values, nil
}

func (t *traced) Set(ctx context.Context, values map[string][]byte) error {
	start := time.Now()
	if err := t.Store.Set(ctx, values); err != nil {
		events.Storage.Error(t.backend, err)
		return err
	}
	events.Storage.Set(t.backend, sortedKeys(values), time.Since(start))
	return nil
}
