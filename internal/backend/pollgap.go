package backend

import (
	"context"
	"time"
)

// pollGap keeps successive store reads at least gap apart, however short the
// configured poll interval is. It is owned by a single poller goroutine.
type pollGap struct {
	gap  time.Duration
	last time.Time
}

func newPollGap(gap time.Duration) *pollGap {
	return &pollGap{gap: gap}
}

// wait blocks until gap has passed since the previous read. It returns the
// context error instead when ctx is done first, so Stop never waits out the gap.
func (p *pollGap) wait(ctx context.Context) error {
	if p.gap > 0 && !p.last.IsZero() {
		if remaining := p.gap - time.Since(p.last); remaining > 0 {
			timer := time.NewTimer(remaining)
			defer timer.Stop()
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-timer.C:
			}
		}
	}
	p.last = time.Now()
	return nil
}
