package command

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-bookmark-popup/internal/logging/events"
)

// Action performs the work behind a popup control and reports back with a
// message for the model.
type Action func(ctx context.Context) tea.Msg

// Request encapsulates an action invocation.
type Request struct {
	ID      string
	Label   string
	Handler Action
}

// Bus coordinates the execution of popup actions.
type Bus struct {
	timeout time.Duration
}

// New initialises a command bus. A positive timeout bounds each action.
func New(timeout time.Duration) *Bus {
	return &Bus{timeout: timeout}
}

// Execute wraps an action into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Handler == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		ctx := context.Background()
		if b != nil && b.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, b.timeout)
			defer cancel()
		}
		msg := req.Handler(ctx)
		if msg == nil {
			events.Command.NoOp(req.ID, req.Label)
			return nil
		}
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}
