package ui

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-bookmark-popup/internal/logging/events"
)

// Control identifies a focusable element of the popup.
type Control int

// Controls in focus order.
const (
	ControlLanguage Control = iota
	ControlTitle
	ControlURL
	ControlTags
	ControlNotes
	ControlAutofill
	ControlSave
	ControlList
	ControlDeleteAll
	ControlFeedback
	ControlSend
	controlCount
)

var controlNames = [controlCount]string{
	ControlLanguage:  "languageSelector",
	ControlTitle:     "title",
	ControlURL:       "url",
	ControlTags:      "tags",
	ControlNotes:     "notes",
	ControlAutofill:  "autofillBookmark",
	ControlSave:      "saveBookmark",
	ControlList:      "bookmarkList",
	ControlDeleteAll: "deleteBookmarks",
	ControlFeedback:  "feedbackText",
	ControlSend:      "sendFeedback",
}

func (c Control) String() string {
	if c < 0 || c >= controlCount {
		return "unknown"
	}
	return controlNames[c]
}

// isTextField reports whether the control accepts typed text.
func (c Control) isTextField() bool {
	switch c {
	case ControlTitle, ControlURL, ControlTags, ControlNotes, ControlFeedback:
		return true
	}
	return false
}

var textFields = []Control{ControlTitle, ControlURL, ControlTags, ControlNotes, ControlFeedback}

const inputCharLimit = 2048

func newInput(placeholder string) *textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = inputCharLimit
	ti.Cursor.SetMode(cursor.CursorStatic)
	if styles.Input != nil {
		ti.TextStyle = styles.Input.Copy()
	}
	if styles.InputPlaceholder != nil {
		ti.PlaceholderStyle = styles.InputPlaceholder.Copy()
	}
	if styles.Cursor != nil {
		ti.Cursor.Style = styles.Cursor.Copy()
	}
	return &ti
}

func newInputs() map[Control]*textinput.Model {
	return map[Control]*textinput.Model{
		ControlTitle:    newInput("Title"),
		ControlURL:      newInput("https://"),
		ControlTags:     newInput("tag1, tag2"),
		ControlNotes:    newInput(""),
		ControlFeedback: newInput(""),
	}
}

// setFocus moves focus to c, blurring the previous text field.
func (m *Model) setFocus(c Control) tea.Cmd {
	if c < 0 || c >= controlCount {
		return nil
	}
	if prev, ok := m.inputs[m.focus]; ok {
		prev.Blur()
	}
	m.focus = c
	events.UI.Focus(c.String())
	if input, ok := m.inputs[c]; ok {
		return input.Focus()
	}
	return nil
}

func (m *Model) focusNext() tea.Cmd {
	return m.setFocus((m.focus + 1) % controlCount)
}

func (m *Model) focusPrev() tea.Cmd {
	return m.setFocus((m.focus + controlCount - 1) % controlCount)
}

// Focus reports the focused control.
func (m *Model) Focus() Control {
	return m.focus
}

// Value returns the current text of a field.
func (m *Model) Value(c Control) string {
	if input, ok := m.inputs[c]; ok {
		return input.Value()
	}
	return ""
}

// SetValue replaces the text of a field.
func (m *Model) SetValue(c Control, value string) {
	if input, ok := m.inputs[c]; ok {
		input.SetValue(value)
		input.CursorEnd()
	}
}

func (m *Model) clearBookmarkForm() {
	for _, c := range []Control{ControlTitle, ControlURL, ControlTags, ControlNotes} {
		m.inputs[c].Reset()
	}
}

func (m *Model) updateInput(c Control, msg tea.Msg) tea.Cmd {
	input, ok := m.inputs[c]
	if !ok {
		return nil
	}
	updated, cmd := input.Update(msg)
	*input = updated
	return cmd
}
