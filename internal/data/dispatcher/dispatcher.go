package dispatcher

import (
	"github.com/atomicstack/tmux-bookmark-popup/internal/backend"
	"github.com/atomicstack/tmux-bookmark-popup/internal/logging/events"
	"github.com/atomicstack/tmux-bookmark-popup/internal/state"
)

type Result struct {
	BookmarksUpdated bool
}

type Dispatcher struct {
	bookmarks state.BookmarkStore
}

func New(b state.BookmarkStore) *Dispatcher {
	return &Dispatcher{bookmarks: b}
}

// Handle applies evt to the stores. Poll errors leave the stores untouched.
func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		events.Storage.Error("watch", evt.Err)
		return res
	}
	switch evt.Kind {
	case backend.KindBookmarks:
		if snapshot, ok := evt.Data.(backend.BookmarkSnapshot); ok {
			res.BookmarksUpdated = d.Apply(snapshot)
		}
	}
	return res
}

// Apply stores snapshot unless it was read before the one already applied or
// matches its revision. It reports whether the entries changed.
func (d *Dispatcher) Apply(snapshot backend.BookmarkSnapshot) bool {
	current := d.bookmarks.Seq()
	if snapshot.Seq != 0 && snapshot.Seq < current {
		events.Storage.Stale(snapshot.Revision, snapshot.Seq, current)
		return false
	}
	if snapshot.Seq > current {
		d.bookmarks.SetSeq(snapshot.Seq)
	}
	if d.bookmarks.Loaded() && snapshot.Revision == d.bookmarks.Revision() {
		return false
	}
	d.bookmarks.SetEntries(snapshot.Bookmarks)
	d.bookmarks.SetRevision(snapshot.Revision)
	return true
}
