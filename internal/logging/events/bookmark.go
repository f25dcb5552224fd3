package events

import "github.com/atomicstack/tmux-bookmark-popup/internal/logging"

type BookmarkTracer struct{}

type bookmarkReason string

const (
	BookmarkReasonConfirmed bookmarkReason = "confirmed"
	BookmarkReasonRejected  bookmarkReason = "rejected"
)

var Bookmark = BookmarkTracer{}

func (BookmarkTracer) Add(id, url string, tags []string) {
	logging.Trace("bookmark.add", map[string]interface{}{"id": id, "url": url, "tags": tags})
}

func (BookmarkTracer) Invalid(key string) {
	logging.Trace("bookmark.invalid", map[string]interface{}{"key": key})
}

func (BookmarkTracer) Delete(id string, removed int) {
	logging.Trace("bookmark.delete", map[string]interface{}{"id": id, "removed": removed})
}

func (BookmarkTracer) DeleteAll(previous int) {
	logging.Trace("bookmark.delete-all", map[string]interface{}{"previous": previous})
}

func (BookmarkTracer) ConfirmDeleteAll(reason bookmarkReason) {
	logging.Trace("bookmark.delete-all.confirm", map[string]interface{}{"reason": string(reason)})
}

func (BookmarkTracer) Render(count int, language string) {
	logging.Trace("bookmark.render", map[string]interface{}{"count": count, "language": language})
}

func (BookmarkTracer) Open(id, url string) {
	logging.Trace("bookmark.open", map[string]interface{}{"id": id, "url": url})
}

func (BookmarkTracer) Autofill(source, url string) {
	logging.Trace("bookmark.autofill", map[string]interface{}{"source": source, "url": url})
}
