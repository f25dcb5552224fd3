package ui

import (
	"github.com/atomicstack/tmux-bookmark-popup/internal/bookmark"
	"github.com/atomicstack/tmux-bookmark-popup/internal/i18n"
	"github.com/atomicstack/tmux-bookmark-popup/internal/logging/events"
)

// EmptyListText is shown in place of the list when no bookmarks are stored.
const EmptyListText = "No saved bookmarks."

// renderedEntry is one bookmark block as it was rendered. Labels are frozen
// at render time.
type renderedEntry struct {
	ID          string
	Title       string
	URL         string
	TagsLine    string
	NotesLine   string
	DeleteLabel string
}

// entryLines is the number of view rows one entry occupies.
const entryLines = 4

func (m *Model) renderEntries(list []bookmark.Bookmark) []renderedEntry {
	if len(list) == 0 {
		return nil
	}
	tags := m.label(i18n.KeyTags)
	notes := m.label(i18n.KeyNotes)
	del := m.label(i18n.KeyDelete)
	entries := make([]renderedEntry, len(list))
	for i, b := range list {
		entries[i] = renderedEntry{
			ID:          b.ID,
			Title:       b.Title,
			URL:         b.URL,
			TagsLine:    tags + ": " + bookmark.FormatTags(b.Tags),
			NotesLine:   notes + ": " + b.Notes,
			DeleteLabel: del,
		}
	}
	return entries
}

// renderList rebuilds the cached entries from the bookmark state store.
func (m *Model) renderList() {
	list := m.store.Entries()
	m.entries = m.renderEntries(list)
	m.list.SetCount(len(m.entries))
	events.Bookmark.Render(len(m.entries), m.language)
}

func (m *Model) selectedEntry() (renderedEntry, bool) {
	if len(m.entries) == 0 || m.list.Cursor < 0 || m.list.Cursor >= len(m.entries) {
		return renderedEntry{}, false
	}
	return m.entries[m.list.Cursor], true
}
