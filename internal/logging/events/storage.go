package events

import (
	"time"

	"github.com/atomicstack/tmux-bookmark-popup/internal/logging"
)

type StorageTracer struct{}

var Storage = StorageTracer{}

func (StorageTracer) Open(backend, location string) {
	logging.Trace("storage.open", map[string]interface{}{"backend": backend, "location": location})
}

func (StorageTracer) Get(backend string, keys []string, found int, elapsed time.Duration) {
	logging.Trace("storage.get", map[string]interface{}{
		"backend": backend,
		"keys":    keys,
		"found":   found,
		"elapsed": elapsed.String(),
	})
}

func (StorageTracer) Set(backend string, keys []string, elapsed time.Duration) {
	logging.Trace("storage.set", map[string]interface{}{
		"backend": backend,
		"keys":    keys,
		"elapsed": elapsed.String(),
	})
}

func (StorageTracer) Changed(revision string, count int) {
	logging.Trace("storage.changed", map[string]interface{}{"revision": revision, "count": count})
}

func (StorageTracer) Stale(revision string, seq, applied uint64) {
	logging.Trace("storage.stale", map[string]interface{}{"revision": revision, "seq": seq, "applied": applied})
}

func (StorageTracer) Error(backend string, err error) {
	if err == nil {
		return
	}
	logging.Trace("storage.error", map[string]interface{}{"backend": backend, "error": err.Error()})
}
