package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-bookmark-popup/internal/backend"
	"github.com/atomicstack/tmux-bookmark-popup/internal/bookmark"
	"github.com/atomicstack/tmux-bookmark-popup/internal/i18n"
	"github.com/atomicstack/tmux-bookmark-popup/internal/logging"
	"github.com/atomicstack/tmux-bookmark-popup/internal/logging/events"
	"github.com/atomicstack/tmux-bookmark-popup/internal/ui/command"
)

// ActionResult reports the outcome of an action that does not change the
// bookmark list.
type ActionResult struct {
	Info string
	Err  error
}

type languageLoadedMsg struct {
	stored string
	err    error
}

type languageSavedMsg struct {
	code string
	err  error
}

// bookmarksLoadedMsg carries a freshly read bookmark sequence. clearForm is
// set once a save has been written, even if the read that follows fails.
type bookmarksLoadedMsg struct {
	snapshot  backend.BookmarkSnapshot
	clearForm bool
	info      string
	err       error
}

type feedbackSentMsg struct {
	err error
}

type autofillResultMsg struct {
	source string
	url    string
	err    error
}

func (m *Model) execute(id, label string, handler command.Action) tea.Cmd {
	return m.bus.Execute(command.Request{ID: id, Label: label, Handler: handler})
}

func (m *Model) loadLanguageCmd() tea.Cmd {
	if m.bookmarks == nil {
		return nil
	}
	return m.execute("language:load", "load language", func(ctx context.Context) tea.Msg {
		code, err := m.bookmarks.Language(ctx)
		return languageLoadedMsg{stored: code, err: err}
	})
}

func (m *Model) saveLanguageCmd(code string) tea.Cmd {
	if m.bookmarks == nil {
		return nil
	}
	return m.execute("language:save", "change language", func(ctx context.Context) tea.Msg {
		return languageSavedMsg{code: code, err: m.bookmarks.SetLanguage(ctx, code)}
	})
}

func (m *Model) loadBookmarksCmd() tea.Cmd {
	if m.bookmarks == nil {
		return nil
	}
	return m.execute("bookmarks:load", "load bookmarks", func(ctx context.Context) tea.Msg {
		read, err := m.bookmarks.Snapshot(ctx)
		return bookmarksLoadedMsg{snapshot: backend.NewBookmarkSnapshot(read), err: err}
	})
}

// saveBookmarkCmd appends the draft and re-reads the list in one command so
// the render always follows the write. The form is cleared whenever the
// append succeeded so a retry cannot store the draft twice.
func (m *Model) saveBookmarkCmd(d bookmark.Draft) tea.Cmd {
	if m.bookmarks == nil {
		return nil
	}
	return m.execute("bookmark:save", m.label(i18n.KeySave), func(ctx context.Context) tea.Msg {
		saved, err := m.bookmarks.Add(ctx, d)
		if err != nil {
			return bookmarksLoadedMsg{err: err}
		}
		read, err := m.bookmarks.Snapshot(ctx)
		return bookmarksLoadedMsg{
			snapshot:  backend.NewBookmarkSnapshot(read),
			clearForm: true,
			info:      fmt.Sprintf("Saved %s", saved.Title),
			err:       err,
		}
	})
}

func (m *Model) deleteBookmarkCmd(id string) tea.Cmd {
	if m.bookmarks == nil {
		return nil
	}
	return m.execute("bookmark:delete", m.label(i18n.KeyDelete), func(ctx context.Context) tea.Msg {
		removed, err := m.bookmarks.Delete(ctx, id)
		if err != nil {
			return bookmarksLoadedMsg{err: err}
		}
		read, err := m.bookmarks.Snapshot(ctx)
		return bookmarksLoadedMsg{snapshot: backend.NewBookmarkSnapshot(read), info: fmt.Sprintf("Deleted %d bookmark(s)", removed), err: err}
	})
}

func (m *Model) deleteAllCmd() tea.Cmd {
	if m.bookmarks == nil {
		return nil
	}
	return m.execute("bookmark:delete-all", m.label(i18n.KeyDeleteAllBookmarks), func(ctx context.Context) tea.Msg {
		if err := m.bookmarks.DeleteAll(ctx); err != nil {
			return bookmarksLoadedMsg{err: err}
		}
		read, err := m.bookmarks.Snapshot(ctx)
		return bookmarksLoadedMsg{snapshot: backend.NewBookmarkSnapshot(read), info: "Deleted all bookmarks", err: err}
	})
}

func (m *Model) sendFeedbackCmd(text string) tea.Cmd {
	return m.execute("feedback:send", m.label(i18n.KeySend), func(ctx context.Context) tea.Msg {
		return feedbackSentMsg{err: m.feedback.Submit(ctx, text)}
	})
}

func (m *Model) autofillCmd() tea.Cmd {
	if m.autofill == nil {
		return func() tea.Msg {
			return autofillResultMsg{err: fmt.Errorf("no autofill source configured")}
		}
	}
	source := m.autofill
	return m.execute("bookmark:autofill", m.label(i18n.KeyAutofillBookmark), func(ctx context.Context) tea.Msg {
		url, err := source.ActiveURL(ctx)
		return autofillResultMsg{source: source.Name(), url: url, err: err}
	})
}

func (m *Model) openBookmarkCmd(entry renderedEntry) tea.Cmd {
	if m.openURL == nil {
		return nil
	}
	open := m.openURL
	return m.execute("bookmark:open", entry.Title, func(context.Context) tea.Msg {
		events.Bookmark.Open(entry.ID, entry.URL)
		if err := open(entry.URL); err != nil {
			return ActionResult{Err: fmt.Errorf("open %s: %w", entry.URL, err)}
		}
		return ActionResult{Info: fmt.Sprintf("Opened %s", entry.URL)}
	})
}

func (m *Model) handleLanguageLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(languageLoadedMsg)
	if !ok {
		return nil
	}
	if loaded.err != nil {
		m.reportError(loaded.err)
		return nil
	}
	applied := m.text.Normalize(loaded.stored)
	events.Language.Load(loaded.stored, applied)
	m.language = applied
	if m.store.Loaded() {
		// the list may have been rendered before the stored language arrived
		m.renderList()
	}
	return nil
}

func (m *Model) handleLanguageSavedMsg(msg tea.Msg) tea.Cmd {
	saved, ok := msg.(languageSavedMsg)
	if !ok {
		return nil
	}
	if saved.err != nil {
		m.reportError(saved.err)
	}
	return nil
}

func (m *Model) handleBookmarksLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(bookmarksLoadedMsg)
	if !ok {
		return nil
	}
	m.finishPending()
	if loaded.err != nil {
		if key, ok := bookmark.IsValidation(loaded.err); ok {
			m.openAlert(key)
			return nil
		}
		m.reportError(loaded.err)
		if loaded.clearForm {
			m.clearBookmarkForm()
		}
		return nil
	}
	m.errMsg = ""
	m.dispatcher.Apply(loaded.snapshot)
	m.renderList()
	if loaded.clearForm {
		m.clearBookmarkForm()
	}
	if loaded.info != "" {
		events.Action.Success(loaded.info)
		if m.verbose {
			m.setInfo(loaded.info)
		}
	}
	return nil
}

func (m *Model) handleFeedbackSentMsg(msg tea.Msg) tea.Cmd {
	sent, ok := msg.(feedbackSentMsg)
	if !ok {
		return nil
	}
	m.finishPending()
	if sent.err != nil {
		if key, ok := bookmark.IsValidation(sent.err); ok {
			m.openAlert(key)
			return nil
		}
		m.reportError(sent.err)
		return nil
	}
	m.inputs[ControlFeedback].Reset()
	m.openAlert(i18n.KeyFeedbackConfirmation)
	return nil
}

func (m *Model) handleAutofillResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(autofillResultMsg)
	if !ok {
		return nil
	}
	m.finishPending()
	if result.err != nil {
		m.reportError(result.err)
		return nil
	}
	events.Bookmark.Autofill(result.source, result.url)
	m.SetValue(ControlURL, result.url)
	m.errMsg = ""
	return nil
}

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(ActionResult)
	if !ok {
		return nil
	}
	m.finishPending()
	if result.Err != nil {
		m.reportError(result.Err)
		return nil
	}
	m.errMsg = ""
	events.Action.Success(result.Info)
	if result.Info != "" && m.verbose {
		m.setInfo(result.Info)
	}
	return nil
}

func (m *Model) startPending(id, label string) {
	m.loading = true
	m.pendingID = id
	m.pendingLabel = label
}

func (m *Model) finishPending() {
	m.loading = false
	m.pendingID = ""
	m.pendingLabel = ""
}

// reportError surfaces a failed collaborator call on the status line.
func (m *Model) reportError(err error) {
	if err == nil {
		return
	}
	logging.Error(err)
	events.Action.Error(err)
	m.errMsg = err.Error()
	m.infoMsg = ""
}
