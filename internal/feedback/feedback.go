// Package feedback accepts free-text feedback from the popup. Messages are
// acknowledged locally; nothing is transmitted.
package feedback

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/atomicstack/tmux-bookmark-popup/internal/bookmark"
	"github.com/atomicstack/tmux-bookmark-popup/internal/i18n"
	"github.com/atomicstack/tmux-bookmark-popup/internal/logging/events"
)

// ErrMessageRequired is returned for an empty message.
var ErrMessageRequired = &bookmark.ValidationError{Key: i18n.KeyMessageRequired}

// Service acknowledges feedback.
type Service struct {
	count atomic.Int64
}

func NewService() *Service {
	return &Service{}
}

// Submit rejects an empty message and otherwise records it as received.
// Whitespace-only text counts as a message.
func (s *Service) Submit(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if text == "" {
		events.Feedback.Rejected(ErrMessageRequired.Key)
		return ErrMessageRequired
	}
	s.count.Add(1)
	events.Feedback.Submit(len(strings.TrimSpace(text)))
	return nil
}

// Received reports how many messages have been accepted.
func (s *Service) Received() int {
	return int(s.count.Load())
}
