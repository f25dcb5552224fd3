package feedback

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/tmux-bookmark-popup/internal/bookmark"
	"github.com/atomicstack/tmux-bookmark-popup/internal/i18n"
)

func TestSubmitRejectsEmptyMessage(t *testing.T) {
	svc := NewService()
	err := svc.Submit(context.Background(), "")
	require.ErrorIs(t, err, ErrMessageRequired)
	key, ok := bookmark.IsValidation(err)
	assert.True(t, ok)
	assert.Equal(t, i18n.KeyMessageRequired, key)
	assert.Zero(t, svc.Received())
}

func TestSubmitAcceptsMessage(t *testing.T) {
	svc := NewService()
	require.NoError(t, svc.Submit(context.Background(), "great popup"))
	require.NoError(t, svc.Submit(context.Background(), "  "))
	assert.Equal(t, 2, svc.Received())
}

func TestSubmitHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	svc := NewService()
	assert.ErrorIs(t, svc.Submit(ctx, "hello"), context.Canceled)
	assert.Zero(t, svc.Received())
}
