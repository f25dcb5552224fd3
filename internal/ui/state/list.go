// Package state holds cursor and viewport bookkeeping for the bookmark list.
package state

// List tracks the highlighted entry and the first visible entry of a list
// whose entries are rendered elsewhere.
type List struct {
	Count          int
	Cursor         int
	ViewportOffset int
}

// SetCount updates the number of entries and clamps the cursor.
func (l *List) SetCount(n int) {
	if n < 0 {
		n = 0
	}
	l.Count = n
	if l.Cursor >= n {
		l.Cursor = n - 1
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
}

// MoveCursorUp moves the cursor to the previous entry.
func (l *List) MoveCursorUp() bool {
	return l.moveCursorBy(-1)
}

// MoveCursorDown moves the cursor to the next entry.
func (l *List) MoveCursorDown() bool {
	return l.moveCursorBy(1)
}

// MoveCursorHome moves the cursor to the first entry.
func (l *List) MoveCursorHome() bool {
	if l.Count == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = 0
	return old != l.Cursor
}

// MoveCursorEnd moves the cursor to the last entry.
func (l *List) MoveCursorEnd() bool {
	if l.Count == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = l.Count - 1
	return old != l.Cursor
}

// MoveCursorPageUp moves the cursor up by the given page size.
func (l *List) MoveCursorPageUp(maxVisible int) bool {
	return l.moveCursorBy(-l.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by the given page size.
func (l *List) MoveCursorPageDown(maxVisible int) bool {
	return l.moveCursorBy(l.pageSize(maxVisible))
}

func (l *List) moveCursorBy(delta int) bool {
	if l.Count == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	l.Cursor += delta
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= l.Count {
		l.Cursor = l.Count - 1
	}
	return l.Cursor != old
}

func (l *List) pageSize(maxVisible int) int {
	if l.Count == 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > l.Count {
		size = l.Count
	}
	if size < 1 {
		size = 1
	}
	return size
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
func (l *List) EnsureCursorVisible(maxVisible int) {
	if l.Count == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= l.Count {
		l.Cursor = l.Count - 1
	}
	if maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := l.Count - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.ViewportOffset > maxOffset {
		l.ViewportOffset = maxOffset
	}
	if l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
	if l.Cursor < l.ViewportOffset {
		l.ViewportOffset = l.Cursor
	}
	upper := l.ViewportOffset + maxVisible - 1
	if l.Cursor > upper {
		l.ViewportOffset = l.Cursor - maxVisible + 1
		if l.ViewportOffset < 0 {
			l.ViewportOffset = 0
		}
		if l.ViewportOffset > maxOffset {
			l.ViewportOffset = maxOffset
		}
	}
}

// Window returns the half-open range of entries visible for maxVisible rows.
func (l *List) Window(maxVisible int) (int, int) {
	l.EnsureCursorVisible(maxVisible)
	if maxVisible <= 0 || maxVisible >= l.Count {
		return 0, l.Count
	}
	return l.ViewportOffset, l.ViewportOffset + maxVisible
}
