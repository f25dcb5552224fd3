package backend

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/atomicstack/tmux-bookmark-popup/internal/bookmark"
	"github.com/atomicstack/tmux-bookmark-popup/internal/kv"
)

func nextEvent(t *testing.T, w *Watcher) Event {
	t.Helper()
	select {
	case evt, ok := <-w.Events():
		if !ok {
			t.Fatalf("events channel closed")
		}
		return evt
	case <-time.After(3 * time.Second):
		t.Fatalf("timed out waiting for watcher event")
	}
	return Event{}
}

func TestWatcherPublishesInitialAndChangedBookmarks(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	svc := bookmark.NewService(store, nil)
	if _, err := svc.Add(ctx, bookmark.Draft{Title: "first", URL: "https://one.example"}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	w := NewWatcher(svc, 10*time.Millisecond, time.Second)
	defer func() {
		w.Stop()
		w.Wait()
	}()

	evt := nextEvent(t, w)
	if evt.Kind != KindBookmarks || evt.Err != nil {
		t.Fatalf("unexpected event %+v", evt)
	}
	snap := evt.Data.(BookmarkSnapshot)
	if len(snap.Bookmarks) != 1 || snap.Bookmarks[0].Title != "first" {
		t.Fatalf("unexpected initial snapshot %+v", snap)
	}

	// a write from another device sharing the store
	other := bookmark.NewService(store, func() time.Time { return time.UnixMilli(99) })
	if _, err := other.Add(ctx, bookmark.Draft{Title: "remote", URL: "https://two.example"}); err != nil {
		t.Fatalf("remote add failed: %v", err)
	}
	evt = nextEvent(t, w)
	changed := evt.Data.(BookmarkSnapshot)
	if len(changed.Bookmarks) != 2 || changed.Bookmarks[1].ID != "bookmark_99" {
		t.Fatalf("unexpected changed snapshot %+v", changed)
	}
	if changed.Seq <= snap.Seq {
		t.Fatalf("expected later read to carry a higher seq, got %d after %d", changed.Seq, snap.Seq)
	}
}

func TestWatcherSkipsUnchangedPolls(t *testing.T) {
	w := NewWatcher(bookmark.NewService(kv.NewMemory(), nil), 5*time.Millisecond, 0)
	evt := nextEvent(t, w)
	if snap := evt.Data.(BookmarkSnapshot); len(snap.Bookmarks) != 0 || snap.Revision != "empty" {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	select {
	case evt := <-w.Events():
		t.Fatalf("unexpected event without a change: %+v", evt)
	case <-time.After(600 * time.Millisecond):
	}
	w.Stop()
	w.Wait()
	if _, ok := <-w.Events(); ok {
		t.Fatalf("expected events channel to be closed after Wait")
	}
}

type brokenStore struct{ kv.Store }

var errUnavailable = errors.New("unavailable")

func (brokenStore) Get(context.Context, ...string) (map[string][]byte, error) {
	return nil, errUnavailable
}

func TestWatcherReportsFetchErrors(t *testing.T) {
	w := NewWatcher(bookmark.NewService(brokenStore{}, nil), time.Hour, 0)
	defer func() {
		w.Stop()
		w.Wait()
	}()
	evt := nextEvent(t, w)
	if !errors.Is(evt.Err, errUnavailable) {
		t.Fatalf("expected fetch error, got %+v", evt)
	}
}

func TestWatcherStopDoesNotWaitOutPollGap(t *testing.T) {
	w := NewWatcher(bookmark.NewService(kv.NewMemory(), nil), time.Millisecond, 0)
	nextEvent(t, w)
	time.Sleep(20 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		w.Stop()
		w.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(100 * time.Millisecond):
		t.Fatalf("watcher did not stop while waiting between reads")
	}
}

func TestRevisionDistinguishesValues(t *testing.T) {
	if Revision(nil) != "empty" {
		t.Fatalf("expected empty revision for absent value")
	}
	if Revision([]byte(`[]`)) == Revision([]byte(`[{"id":"a"}]`)) {
		t.Fatalf("expected different revisions")
	}
	if Revision([]byte(`[]`)) != Revision([]byte(`[]`)) {
		t.Fatalf("expected stable revision")
	}
}
