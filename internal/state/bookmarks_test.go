package state

import (
	"testing"

	"github.com/atomicstack/tmux-bookmark-popup/internal/bookmark"
)

func TestBookmarkStoreCopiesEntries(t *testing.T) {
	s := NewBookmarkStore()
	if s.Loaded() {
		t.Fatalf("new store should not be loaded")
	}
	in := []bookmark.Bookmark{{ID: "bookmark_1", Title: "A", Tags: []string{"x"}}}
	s.SetEntries(in)
	in[0].Title = "mutated"
	in[0].Tags[0] = "mutated"

	out := s.Entries()
	if out[0].Title != "A" || out[0].Tags[0] != "x" {
		t.Fatalf("store should keep its own copy, got %+v", out[0])
	}
	out[0].Tags[0] = "changed"
	if s.Entries()[0].Tags[0] != "x" {
		t.Fatalf("Entries should return a copy")
	}
	if !s.Loaded() {
		t.Fatalf("store should report loaded after SetEntries")
	}
}

func TestBookmarkStoreEmpty(t *testing.T) {
	s := NewBookmarkStore()
	s.SetEntries([]bookmark.Bookmark{})
	if len(s.Entries()) != 0 || !s.Loaded() {
		t.Fatalf("expected an empty loaded store")
	}
	s.SetRevision("abc")
	if s.Revision() != "abc" {
		t.Fatalf("unexpected revision %q", s.Revision())
	}
	s.SetSeq(7)
	if s.Seq() != 7 {
		t.Fatalf("unexpected seq %d", s.Seq())
	}
}
