// Package bookmark holds the bookmark record, its validation rules and the
// service that persists bookmarks and the language preference in a kv.Store.
package bookmark

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/tmux-bookmark-popup/internal/i18n"
)

// IDPrefix starts every generated bookmark id.
const IDPrefix = "bookmark_"

// Bookmark is a saved link. Records are immutable once stored.
type Bookmark struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	URL   string   `json:"url"`
	Tags  []string `json:"tags"`
	Notes string   `json:"notes"`
}

// Draft carries the raw form values for a new bookmark.
type Draft struct {
	Title string
	URL   string
	Tags  string
	Notes string
}

// ValidationError reports a user-facing validation failure. Key names the
// i18n text describing it.
type ValidationError struct {
	Key string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Key
}

var (
	ErrTitleRequired = &ValidationError{Key: i18n.KeyTitleRequired}
	ErrInvalidURL    = &ValidationError{Key: i18n.KeyInvalidURL}
)

// Validate checks the title first, then the URL.
func (d Draft) Validate() error {
	if d.Title == "" {
		return ErrTitleRequired
	}
	if !ValidURL(d.URL) {
		return ErrInvalidURL
	}
	return nil
}

// ValidURL reports whether raw parses as an absolute URL once surrounding
// whitespace is trimmed. Spaces inside the URL are accepted.
func ValidURL(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && (u.Host != "" || u.Opaque != "" || u.Path != "")
}

// ParseTags splits a comma separated list and trims each piece. An empty
// input yields a single empty tag.
func ParseTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, len(parts))
	for i, p := range parts {
		tags[i] = strings.TrimSpace(p)
	}
	return tags
}

// NewID derives an id from the creation time in epoch milliseconds.
func NewID(now time.Time) string {
	return IDPrefix + strconv.FormatInt(now.UnixMilli(), 10)
}

// FormatTags joins tags the way the list displays them.
func FormatTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// IsValidation reports whether err is a ValidationError and returns its key.
func IsValidation(err error) (string, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Key, true
	}
	return "", false
}
