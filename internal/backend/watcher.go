package backend

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/atomicstack/tmux-bookmark-popup/internal/bookmark"
	"github.com/atomicstack/tmux-bookmark-popup/internal/logging/events"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindBookmarks Kind = iota
)

// Event conveys updated data or an error from a backend poll.
type Event struct {
	Kind Kind
	Data interface{}
	Err  error
}

// BookmarkSnapshot is the Data of a KindBookmarks event. Seq is the read
// order assigned by the bookmark service; zero means unordered.
type BookmarkSnapshot struct {
	Bookmarks []bookmark.Bookmark
	Revision  string
	Seq       uint64
}

// NewBookmarkSnapshot fingerprints a service snapshot.
func NewBookmarkSnapshot(s bookmark.Snapshot) BookmarkSnapshot {
	return BookmarkSnapshot{Bookmarks: s.Bookmarks, Revision: Revision(s.Raw), Seq: s.Seq}
}

// Source reads the stored bookmark sequence.
type Source interface {
	Snapshot(ctx context.Context) (bookmark.Snapshot, error)
}

// minPollGap bounds how often the store is queried regardless of interval.
const minPollGap = 250 * time.Millisecond

// Watcher polls the source at a fixed interval and publishes an event each
// time the stored bookmark sequence changes, including changes written by
// other devices sharing a synced backend.
type Watcher struct {
	source   Source
	interval time.Duration
	timeout  time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup

	revision string
}

// NewWatcher creates a watcher that polls source every interval. Each poll is
// bounded by timeout when it is positive. Sharing the popup's bookmark
// service as the source keeps watcher snapshots ordered with local reads.
func NewWatcher(source Source, interval, timeout time.Duration) *Watcher {
	if interval <= 0 {
		interval = time.Second
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		source:   source,
		interval: interval,
		timeout:  timeout,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}

	w.startBookmarkPoller()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The poller exits after its current fetch
// completes; use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller goroutine has exited and the events channel
// is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) startBookmarkPoller() {
	gap := newPollGap(minPollGap)
	w.wg.Add(1)
	go w.poll(KindBookmarks, func(ctx context.Context) (interface{}, bool, error) {
		if err := gap.wait(ctx); err != nil {
			return nil, false, err
		}
		return w.fetchBookmarks(ctx)
	})
}

// fetchBookmarks reports changed=false when the stored value hashes to the
// revision already published.
func (w *Watcher) fetchBookmarks(ctx context.Context) (interface{}, bool, error) {
	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}
	read, err := w.source.Snapshot(ctx)
	if err != nil {
		return nil, true, err
	}
	snapshot := NewBookmarkSnapshot(read)
	if snapshot.Revision == w.revision {
		return nil, false, nil
	}
	w.revision = snapshot.Revision
	events.Storage.Changed(snapshot.Revision, len(snapshot.Bookmarks))
	return snapshot, true, nil
}

// Revision fingerprints a stored value.
func Revision(raw []byte) string {
	if len(raw) == 0 {
		return "empty"
	}
	return strconv.FormatUint(xxhash.Sum64(raw), 16)
}

func (w *Watcher) poll(kind Kind, fetch func(context.Context) (interface{}, bool, error)) {
	defer w.wg.Done()

	emit := func() bool {
		data, changed, err := fetch(w.ctx)
		if w.ctx.Err() != nil {
			return false
		}
		if !changed {
			return true
		}
		evt := Event{Kind: kind, Data: data, Err: err}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}
