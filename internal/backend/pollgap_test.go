package backend

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestPollGapSpacesReads(t *testing.T) {
	gap := newPollGap(30 * time.Millisecond)
	ctx := context.Background()
	start := time.Now()
	for i := 0; i < 3; i++ {
		if err := gap.wait(ctx); err != nil {
			t.Fatalf("wait %d: %v", i, err)
		}
	}
	if elapsed := time.Since(start); elapsed < 60*time.Millisecond {
		t.Fatalf("expected reads spaced by the gap, took %s", elapsed)
	}
}

func TestPollGapDisabled(t *testing.T) {
	gap := newPollGap(0)
	start := time.Now()
	for i := 0; i < 100; i++ {
		if err := gap.wait(context.Background()); err != nil {
			t.Fatalf("wait: %v", err)
		}
	}
	if elapsed := time.Since(start); elapsed > 50*time.Millisecond {
		t.Fatalf("expected no waiting, took %s", elapsed)
	}
}

func TestPollGapReturnsOnCancel(t *testing.T) {
	gap := newPollGap(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	if err := gap.wait(ctx); err != nil {
		t.Fatalf("first read should not wait: %v", err)
	}
	done := make(chan error, 1)
	go func() { done <- gap.wait(ctx) }()
	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("wait did not return after cancel")
	}
}
