package dispatcher

import (
	"errors"
	"testing"

	"github.com/atomicstack/tmux-bookmark-popup/internal/backend"
	"github.com/atomicstack/tmux-bookmark-popup/internal/bookmark"
	"github.com/atomicstack/tmux-bookmark-popup/internal/state"
)

func TestHandleAppliesBookmarkSnapshot(t *testing.T) {
	store := state.NewBookmarkStore()
	d := New(store)
	snap := backend.BookmarkSnapshot{
		Bookmarks: []bookmark.Bookmark{{ID: "bookmark_1", Title: "A"}},
		Revision:  "r1",
	}
	res := d.Handle(backend.Event{Kind: backend.KindBookmarks, Data: snap})
	if !res.BookmarksUpdated {
		t.Fatalf("expected bookmarks to be updated")
	}
	if got := store.Entries(); len(got) != 1 || got[0].Title != "A" {
		t.Fatalf("unexpected entries %+v", got)
	}

	res = d.Handle(backend.Event{Kind: backend.KindBookmarks, Data: snap})
	if res.BookmarksUpdated {
		t.Fatalf("same revision should not report an update")
	}
}

func TestHandleIgnoresErrorsAndForeignData(t *testing.T) {
	store := state.NewBookmarkStore()
	d := New(store)
	if res := d.Handle(backend.Event{Kind: backend.KindBookmarks, Err: errors.New("down")}); res.BookmarksUpdated {
		t.Fatalf("error events must not update state")
	}
	if res := d.Handle(backend.Event{Kind: backend.KindBookmarks, Data: "junk"}); res.BookmarksUpdated {
		t.Fatalf("unexpected data must not update state")
	}
	if store.Loaded() {
		t.Fatalf("store should remain unloaded")
	}
}

func TestApplySkipsSnapshotsReadBeforeTheAppliedOne(t *testing.T) {
	store := state.NewBookmarkStore()
	d := New(store)
	older := backend.BookmarkSnapshot{Revision: "r1", Seq: 4}
	newer := backend.BookmarkSnapshot{
		Bookmarks: []bookmark.Bookmark{{ID: "bookmark_2", Title: "saved"}},
		Revision:  "r2",
		Seq:       5,
	}
	if !d.Apply(newer) {
		t.Fatalf("expected newer snapshot to apply")
	}
	if d.Apply(older) {
		t.Fatalf("older snapshot must not replace a newer one")
	}
	if got := store.Entries(); len(got) != 1 || got[0].Title != "saved" {
		t.Fatalf("unexpected entries %+v", got)
	}
	if store.Seq() != 5 || store.Revision() != "r2" {
		t.Fatalf("unexpected seq %d revision %q", store.Seq(), store.Revision())
	}

	remote := backend.BookmarkSnapshot{Revision: "r3", Seq: 6}
	if !d.Apply(remote) {
		t.Fatalf("later snapshot with a new revision should apply")
	}
	if len(store.Entries()) != 0 {
		t.Fatalf("expected the later snapshot's entries")
	}
}

func TestApplySameRevisionAdvancesSeq(t *testing.T) {
	store := state.NewBookmarkStore()
	d := New(store)
	d.Apply(backend.BookmarkSnapshot{Revision: "r1", Seq: 1})
	if d.Apply(backend.BookmarkSnapshot{Revision: "r1", Seq: 3}) {
		t.Fatalf("same revision should not report an update")
	}
	if store.Seq() != 3 {
		t.Fatalf("expected seq to advance to 3, got %d", store.Seq())
	}
	if d.Apply(backend.BookmarkSnapshot{Revision: "r0", Seq: 2}) {
		t.Fatalf("snapshot read before seq 3 must be skipped")
	}
}
