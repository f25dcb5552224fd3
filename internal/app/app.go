package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cli/browser"

	"github.com/atomicstack/tmux-bookmark-popup/internal/autofill"
	"github.com/atomicstack/tmux-bookmark-popup/internal/backend"
	"github.com/atomicstack/tmux-bookmark-popup/internal/bookmark"
	"github.com/atomicstack/tmux-bookmark-popup/internal/feedback"
	"github.com/atomicstack/tmux-bookmark-popup/internal/i18n"
	"github.com/atomicstack/tmux-bookmark-popup/internal/kv"
	"github.com/atomicstack/tmux-bookmark-popup/internal/logging/events"
	"github.com/atomicstack/tmux-bookmark-popup/internal/tmux"
	"github.com/atomicstack/tmux-bookmark-popup/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	SocketPath   string
	Width        int
	Height       int
	ShowFooter   bool
	Verbose      bool
	Store        kv.Options
	Autofill     string
	SyncInterval time.Duration
	StoreTimeout time.Duration
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	socketPath, err := tmux.ResolveSocketPath(cfg.SocketPath)
	if err != nil {
		return fmt.Errorf("resolve socket path: %w", err)
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	source, err := autofill.New(cfg.Autofill, socketPath)
	if err != nil {
		return err
	}

	bookmarks := bookmark.NewService(store, nil)
	var watcher *backend.Watcher
	if cfg.SyncInterval > 0 {
		watcher = backend.NewWatcher(bookmarks, cfg.SyncInterval, cfg.StoreTimeout)
		defer watcher.Stop()
	}

	browser.Stdout = io.Discard
	browser.Stderr = io.Discard

	model := ui.NewModel(ui.Options{
		Bookmarks:    bookmarks,
		Feedback:     feedback.NewService(),
		Localizer:    i18n.New(),
		Autofill:     source,
		Watcher:      watcher,
		OpenURL:      browser.OpenURL,
		StoreTimeout: cfg.StoreTimeout,
		Width:        cfg.Width,
		Height:       cfg.Height,
		ShowFooter:   cfg.ShowFooter,
		Verbose:      cfg.Verbose,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		events.App.Stop("killed")
		return nil
	}
	if err != nil {
		events.App.Stop("error")
		return err
	}
	events.App.Stop("quit")
	return nil
}

// openStore opens the configured backend wrapped with storage tracing.
func openStore(cfg Config) (kv.Store, error) {
	timeout := cfg.StoreTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	store, err := kv.Open(ctx, cfg.Store)
	if err != nil {
		events.Storage.Error(cfg.Store.Backend, err)
		return nil, fmt.Errorf("open %s store: %w", cfg.Store.Backend, err)
	}
	events.Storage.Open(cfg.Store.Backend, storeLocation(cfg.Store))
	return kv.WithTrace(store, cfg.Store.Backend), nil
}

func storeLocation(opts kv.Options) string {
	switch opts.Backend {
	case kv.BackendRedis:
		return opts.Redis.Address + "/" + opts.Redis.Prefix
	case kv.BackendMemory:
		return "memory"
	}
	if opts.Path == "" {
		if def, err := kv.DefaultSQLitePath(); err == nil {
			return def
		}
	}
	return opts.Path
}
