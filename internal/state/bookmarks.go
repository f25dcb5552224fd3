package state

import "github.com/atomicstack/tmux-bookmark-popup/internal/bookmark"

// BookmarkStore holds the last known bookmark sequence for the UI.
type BookmarkStore interface {
	Entries() []bookmark.Bookmark
	SetEntries([]bookmark.Bookmark)
	Revision() string
	SetRevision(string)
	// Seq is the read order of the applied snapshot.
	Seq() uint64
	SetSeq(uint64)
	Loaded() bool
}

type bookmarkStore struct {
	entries  []bookmark.Bookmark
	revision string
	seq      uint64
	loaded   bool
}

func NewBookmarkStore() BookmarkStore {
	return &bookmarkStore{}
}

func (s *bookmarkStore) Entries() []bookmark.Bookmark {
	return cloneBookmarks(s.entries)
}

func (s *bookmarkStore) SetEntries(entries []bookmark.Bookmark) {
	s.entries = cloneBookmarks(entries)
	s.loaded = true
}

func (s *bookmarkStore) Revision() string {
	return s.revision
}

func (s *bookmarkStore) SetRevision(revision string) {
	s.revision = revision
}

func (s *bookmarkStore) Seq() uint64 {
	return s.seq
}

func (s *bookmarkStore) SetSeq(seq uint64) {
	s.seq = seq
}

func (s *bookmarkStore) Loaded() bool {
	return s.loaded
}

func cloneBookmarks(entries []bookmark.Bookmark) []bookmark.Bookmark {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]bookmark.Bookmark, len(entries))
	for i, b := range entries {
		b.Tags = append([]string(nil), b.Tags...)
		dup[i] = b
	}
	return dup
}
