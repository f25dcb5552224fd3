package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-bookmark-popup/internal/i18n"
	"github.com/atomicstack/tmux-bookmark-popup/internal/logging/events"
)

type modalKind int

const (
	modalAlert modalKind = iota
	modalConfirm
)

// modal is a blocking alert or yes/no confirmation. Its text is resolved
// when it opens.
type modal struct {
	kind  modalKind
	key   string
	text  string
	onYes func() tea.Cmd
	onNo  func()
}

func (m *Model) openAlert(key string) {
	text := m.label(key)
	m.modal = &modal{kind: modalAlert, key: key, text: text}
	events.UI.Alert(key, text)
}

func (m *Model) openConfirm(key string, onYes func() tea.Cmd, onNo func()) {
	m.modal = &modal{kind: modalConfirm, key: key, text: m.label(key), onYes: onYes, onNo: onNo}
	events.UI.Confirm(key)
}

// ModalText returns the text of the open modal, or "" when none is open.
func (m *Model) ModalText() string {
	if m.modal == nil {
		return ""
	}
	return m.modal.text
}

func (m *Model) handleModalKey(msg tea.KeyMsg) tea.Cmd {
	md := m.modal
	switch md.kind {
	case modalAlert:
		if key.Matches(msg, m.keys.Dismiss) {
			m.modal = nil
		}
		return nil
	case modalConfirm:
		switch {
		case key.Matches(msg, m.keys.Confirm):
			m.modal = nil
			if md.onYes != nil {
				return md.onYes()
			}
		case key.Matches(msg, m.keys.Reject):
			m.modal = nil
			if md.onNo != nil {
				md.onNo()
			}
		}
	}
	return nil
}

func (m *Model) confirmDeleteAll() {
	m.openConfirm(i18n.KeyConfirmDeleteAll,
		func() tea.Cmd {
			events.Bookmark.ConfirmDeleteAll(events.BookmarkReasonConfirmed)
			m.startPending("bookmark:delete-all", m.label(i18n.KeyDeleteAllBookmarks))
			return m.deleteAllCmd()
		},
		func() {
			events.Bookmark.ConfirmDeleteAll(events.BookmarkReasonRejected)
		},
	)
}
