// Package autofill answers the "current page" query used to prefill the URL
// field: the last URL visible in the active tmux pane or the newest tmux
// paste buffer, or the clipboard.
package autofill

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/tmux-bookmark-popup/internal/tmux"
)

// Source names accepted by New.
const (
	SourcePane      = "pane"
	SourceBuffer    = "buffer"
	SourceClipboard = "clipboard"
)

var (
	// ErrNoURL is returned when the scanned text holds no URL.
	ErrNoURL = errors.New("no url found")
	// ErrUnsupportedSource is returned by New for unknown source names.
	ErrUnsupportedSource = errors.New("unsupported autofill source")
)

// Source returns the URL of whatever the user is currently looking at.
type Source interface {
	Name() string
	ActiveURL(ctx context.Context) (string, error)
}

// Sources lists the names New understands.
func Sources() []string {
	return []string{SourcePane, SourceBuffer, SourceClipboard}
}

// New builds the named source. socketPath is only used by the tmux sources.
func New(name, socketPath string) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case SourcePane, "":
		return NewPaneSource(socketPath), nil
	case SourceBuffer:
		return NewBufferSource(socketPath), nil
	case SourceClipboard:
		return NewClipboardSource(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSource, name)
	}
}

var urlPattern = regexp.MustCompile(`https?://[^\s<>"'\x60]+`)

// trailing punctuation that usually belongs to the surrounding prose
const urlTrailing = ".,;:!?)]}"

// LastURL returns the last absolute http(s) URL in text, ignoring terminal
// escape sequences.
func LastURL(text string) (string, bool) {
	matches := urlPattern.FindAllString(ansi.Strip(text), -1)
	for i := len(matches) - 1; i >= 0; i-- {
		candidate := strings.TrimRight(matches[i], urlTrailing)
		if len(candidate) > len("https://") {
			return candidate, true
		}
	}
	return "", false
}

// PaneSource scans the active tmux pane.
type PaneSource struct {
	socketPath string
	capture    func(socketPath string) (string, error)
}

func NewPaneSource(socketPath string) *PaneSource {
	return &PaneSource{socketPath: socketPath, capture: tmux.ActivePaneContents}
}

func (p *PaneSource) Name() string { return SourcePane }

func (p *PaneSource) ActiveURL(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	text, err := p.capture(p.socketPath)
	if err != nil {
		return "", fmt.Errorf("read active pane: %w", err)
	}
	url, ok := LastURL(text)
	if !ok {
		return "", ErrNoURL
	}
	return url, nil
}

// BufferSource scans the most recent tmux paste buffer.
type BufferSource struct {
	socketPath string
	show       func(socketPath string) (string, error)
}

func NewBufferSource(socketPath string) *BufferSource {
	return &BufferSource{socketPath: socketPath, show: tmux.ShowBuffer}
}

func (b *BufferSource) Name() string { return SourceBuffer }

func (b *BufferSource) ActiveURL(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	text, err := b.show(b.socketPath)
	if err != nil {
		return "", fmt.Errorf("read paste buffer: %w", err)
	}
	url, ok := LastURL(text)
	if !ok {
		return "", ErrNoURL
	}
	return url, nil
}

// ClipboardSource returns the trimmed clipboard contents unvalidated.
type ClipboardSource struct {
	read func() (string, error)
}

func NewClipboardSource() *ClipboardSource {
	return &ClipboardSource{read: clipboard.ReadAll}
}

func (c *ClipboardSource) Name() string { return SourceClipboard }

func (c *ClipboardSource) ActiveURL(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	text, err := c.read()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	return strings.TrimSpace(text), nil
}
