package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-bookmark-popup/internal/bookmark"
	"github.com/atomicstack/tmux-bookmark-popup/internal/i18n"
	"github.com/atomicstack/tmux-bookmark-popup/internal/logging/events"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.modal != nil {
		return m.handleModalKey(keyMsg)
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Next):
		return m.focusNext()
	case key.Matches(keyMsg, m.keys.Prev):
		return m.focusPrev()
	}
	if m.focus.isTextField() {
		return m.handleTextFieldKey(keyMsg)
	}
	switch m.focus {
	case ControlLanguage:
		return m.handleLanguageKey(keyMsg)
	case ControlList:
		return m.handleListKey(keyMsg)
	default:
		if key.Matches(keyMsg, m.keys.Activate) {
			return m.activate(m.focus)
		}
		switch {
		case key.Matches(keyMsg, m.keys.Up), key.Matches(keyMsg, m.keys.Left):
			return m.focusPrev()
		case key.Matches(keyMsg, m.keys.Down), key.Matches(keyMsg, m.keys.Right):
			return m.focusNext()
		}
	}
	return nil
}

// handleTextFieldKey lets the focused field consume typed text. Enter
// submits the form the field belongs to.
func (m *Model) handleTextFieldKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		if m.focus == ControlFeedback {
			return m.activate(ControlSend)
		}
		return m.activate(ControlSave)
	case tea.KeyUp:
		return m.focusPrev()
	case tea.KeyDown:
		return m.focusNext()
	}
	if key.Matches(msg, m.keys.ClearLine) {
		m.inputs[m.focus].Reset()
		return nil
	}
	return m.updateInput(m.focus, msg)
}

func (m *Model) handleLanguageKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Left):
		return m.SelectLanguage(m.text.Next(m.language, -1))
	case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.Activate):
		return m.SelectLanguage(m.text.Next(m.language, 1))
	case key.Matches(msg, m.keys.Down):
		return m.focusNext()
	}
	return nil
}

func (m *Model) handleListKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		if !m.list.MoveCursorUp() {
			return m.focusPrev()
		}
	case key.Matches(msg, m.keys.Down):
		if !m.list.MoveCursorDown() {
			return m.focusNext()
		}
	case msg.String() == "home", msg.String() == "g":
		m.list.MoveCursorHome()
	case msg.String() == "end", msg.String() == "G":
		m.list.MoveCursorEnd()
	case msg.String() == "pgup":
		m.list.MoveCursorPageUp(m.maxVisibleEntries())
	case msg.String() == "pgdown":
		m.list.MoveCursorPageDown(m.maxVisibleEntries())
	case key.Matches(msg, m.keys.Activate):
		if entry, ok := m.selectedEntry(); ok {
			return m.openBookmarkCmd(entry)
		}
		return nil
	case key.Matches(msg, m.keys.Delete):
		if entry, ok := m.selectedEntry(); ok {
			return m.DeleteBookmark(entry.ID)
		}
		return nil
	default:
		return nil
	}
	events.UI.ListCursor(m.list.Cursor)
	return nil
}

// activate performs the action behind a button control.
func (m *Model) activate(c Control) tea.Cmd {
	switch c {
	case ControlAutofill:
		m.startPending("bookmark:autofill", m.label(i18n.KeyAutofillBookmark))
		return m.autofillCmd()
	case ControlSave:
		m.startPending("bookmark:save", m.label(i18n.KeySave))
		return m.saveBookmarkCmd(m.draft())
	case ControlDeleteAll:
		m.confirmDeleteAll()
		return nil
	case ControlSend:
		m.startPending("feedback:send", m.label(i18n.KeySend))
		return m.sendFeedbackCmd(m.Value(ControlFeedback))
	}
	return nil
}

func (m *Model) draft() bookmark.Draft {
	return bookmark.Draft{
		Title: m.Value(ControlTitle),
		URL:   m.Value(ControlURL),
		Tags:  m.Value(ControlTags),
		Notes: m.Value(ControlNotes),
	}
}

// SelectLanguage applies code to the static labels and persists it. The
// rendered bookmark entries keep the labels they were built with.
func (m *Model) SelectLanguage(code string) tea.Cmd {
	m.language = code
	return m.saveLanguageCmd(code)
}

// DeleteBookmark removes every bookmark carrying id.
func (m *Model) DeleteBookmark(id string) tea.Cmd {
	m.startPending("bookmark:delete", m.label(i18n.KeyDelete))
	return m.deleteBookmarkCmd(id)
}
