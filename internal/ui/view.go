package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"

	"github.com/atomicstack/tmux-bookmark-popup/internal/format/table"
	"github.com/atomicstack/tmux-bookmark-popup/internal/i18n"
)

const (
	indicator = "▌"
	// fixedRows counts the view rows outside the bookmark list: header,
	// bookmark form, delete-all, feedback form, spacers and the status line.
	fixedRows  = 16
	footerRows = 2
	modalWidth = 48
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.modal != nil {
		return m.viewModal()
	}
	lines := make([]styledLine, 0, 32)
	lines = append(lines, styledLine{text: m.headerLine(), raw: true}, styledLine{})

	lines = append(lines, styledLine{text: m.label(i18n.KeyBookmarkFormTitle), style: styles.Section})
	lines = append(lines, m.formLines()...)
	lines = append(lines, styledLine{
		text: m.button(ControlAutofill, i18n.KeyAutofillBookmark) + " " + m.button(ControlSave, i18n.KeySave),
		raw:  true,
	})
	lines = append(lines, styledLine{})

	lines = append(lines, m.listLines()...)
	lines = append(lines, styledLine{text: m.button(ControlDeleteAll, i18n.KeyDeleteAllBookmarks), raw: true})
	lines = append(lines, styledLine{})

	lines = append(lines, styledLine{text: m.label(i18n.KeyFeedbackFormTitle), style: styles.Section})
	lines = append(lines, styledLine{text: m.fieldPrefix(ControlFeedback) + m.inputs[ControlFeedback].View(), raw: true})
	lines = append(lines, styledLine{text: m.button(ControlSend, i18n.KeySend), raw: true})

	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: m.help.View(m.keys), raw: true})
	}
	lines = limitHeight(lines, m.height-1, m.width)
	lines = append(lines, m.statusLine())
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

func (m *Model) headerLine() string {
	title := styles.Title.Render(m.label(i18n.KeyPageTitle))
	return title + "  " + m.languageSelector()
}

func (m *Model) languageSelector() string {
	focused := m.focus == ControlLanguage
	parts := make([]string, 0, len(m.text.Languages()))
	for _, code := range m.text.Languages() {
		if code != m.language {
			parts = append(parts, styles.Selector.Render(" "+code+" "))
			continue
		}
		style := styles.Selector
		if focused {
			style = styles.FocusedSelector
		}
		parts = append(parts, style.Render("["+code+"]"))
	}
	return strings.Join(parts, "")
}

// formLines renders the bookmark fields with their labels in one aligned
// column.
func (m *Model) formLines() []styledLine {
	fields := []struct {
		control Control
		label   string
	}{
		{ControlTitle, "Title"},
		{ControlURL, "URL"},
		{ControlTags, m.label(i18n.KeyTags)},
		{ControlNotes, m.label(i18n.KeyNotes)},
	}
	rows := make([][]string, len(fields))
	for i, f := range fields {
		rows[i] = []string{f.label}
	}
	labels := table.Format(rows, []table.Alignment{table.AlignLeft})
	out := make([]styledLine, len(fields))
	for i, f := range fields {
		style := styles.Label
		if m.focus == f.control {
			style = styles.FocusedLabel
		}
		text := m.fieldPrefix(f.control) + style.Render(labels[i]) + "  " + m.inputs[f.control].View()
		out[i] = styledLine{text: text, raw: true}
	}
	return out
}

func (m *Model) fieldPrefix(c Control) string {
	if m.focus == c {
		return styles.SelectedItemIndicator.Render(indicator) + " "
	}
	return "  "
}

func (m *Model) button(c Control, key string) string {
	text := "[" + m.label(key) + "]"
	if m.focus == c {
		return styles.FocusedButton.Render(text)
	}
	return styles.Button.Render(text)
}

// listLines renders the cached entries inside the list viewport.
func (m *Model) listLines() []styledLine {
	if len(m.entries) == 0 {
		return []styledLine{{text: "  " + EmptyListText, style: styles.Empty}}
	}
	start, end := m.list.Window(m.maxVisibleEntries())
	lines := make([]styledLine, 0, (end-start)*entryLines+1)
	if start > 0 {
		lines = append(lines, styledLine{text: fmt.Sprintf("  ↑ %d more", start), style: styles.ItemDetail})
	}
	for i := start; i < end; i++ {
		lines = append(lines, m.entryLines(i)...)
	}
	if end < len(m.entries) {
		lines = append(lines, styledLine{text: fmt.Sprintf("  ↓ %d more", len(m.entries)-end), style: styles.ItemDetail})
	}
	return lines
}

func (m *Model) entryLines(idx int) []styledLine {
	entry := m.entries[idx]
	selected := m.focus == ControlList && idx == m.list.Cursor
	indicatorStyle := styles.ItemIndicator
	titleStyle := styles.Item
	if selected {
		indicatorStyle = styles.SelectedItemIndicator
		titleStyle = styles.SelectedItem
	}
	link := ansi.SetHyperlink(entry.URL) + titleStyle.Render(entry.Title) + ansi.ResetHyperlink()
	head := indicatorStyle.Render(indicator) + " " + link + " " + styles.ItemDetail.Render(entry.URL)
	deleteStyle := styles.Button
	if selected {
		deleteStyle = styles.FocusedButton
	}
	return []styledLine{
		{text: head, raw: true},
		{text: "    " + entry.TagsLine, style: styles.ItemDetail},
		{text: "    " + entry.NotesLine, style: styles.ItemDetail},
		{text: "    " + deleteStyle.Render("["+entry.DeleteLabel+"]"), raw: true},
	}
}

// maxVisibleEntries returns how many entries fit the popup height, or 0 when
// the height is unknown.
func (m *Model) maxVisibleEntries() int {
	if m.height <= 0 {
		return 0
	}
	available := m.height - fixedRows
	if m.showFooter {
		available -= footerRows
	}
	// two rows for the scroll markers
	available -= 2
	n := available / entryLines
	if n < 1 {
		n = 1
	}
	return n
}

func (m *Model) statusLine() styledLine {
	switch {
	case m.errMsg != "":
		return styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	case m.loading && m.pendingLabel != "":
		return styledLine{text: m.pendingLabel + "…", style: styles.Info}
	}
	return styledLine{}
}

func (m *Model) viewModal() string {
	md := m.modal
	width := modalWidth
	if m.width > 0 && m.width-6 < width {
		width = m.width - 6
	}
	if width < 10 {
		width = 10
	}
	hint := m.keys.Dismiss.Help().Key + ": OK"
	if md.kind == modalConfirm {
		hint = m.keys.Confirm.Help().Key + ": " + m.keys.Confirm.Help().Desc + "  " +
			m.keys.Reject.Help().Key + ": " + m.keys.Reject.Help().Desc
	}
	body := wordwrap.String(md.text, width) + "\n\n" + styles.ModalHint.Render(hint)
	box := styles.Modal.Render(body)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return styles.Title.Render(m.label(i18n.KeyPageTitle)) + "\n\n" + box
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if ansi.StringWidth(text) > width {
				text = ansi.Truncate(text, width, "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{
			text:          text,
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
			raw:           line.raw,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil && text != "" {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
