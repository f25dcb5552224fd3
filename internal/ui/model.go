package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-bookmark-popup/internal/autofill"
	"github.com/atomicstack/tmux-bookmark-popup/internal/backend"
	"github.com/atomicstack/tmux-bookmark-popup/internal/bookmark"
	"github.com/atomicstack/tmux-bookmark-popup/internal/data/dispatcher"
	"github.com/atomicstack/tmux-bookmark-popup/internal/feedback"
	"github.com/atomicstack/tmux-bookmark-popup/internal/i18n"
	"github.com/atomicstack/tmux-bookmark-popup/internal/state"
	"github.com/atomicstack/tmux-bookmark-popup/internal/theme"
	"github.com/atomicstack/tmux-bookmark-popup/internal/ui/command"
	uistate "github.com/atomicstack/tmux-bookmark-popup/internal/ui/state"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options carries the collaborators and display settings of the popup.
type Options struct {
	Bookmarks *bookmark.Service
	Feedback  *feedback.Service
	Localizer *i18n.Localizer
	Autofill  autofill.Source
	Watcher   *backend.Watcher
	// OpenURL opens a bookmark in the system browser.
	OpenURL      func(url string) error
	StoreTimeout time.Duration
	Width        int
	Height       int
	ShowFooter   bool
	Verbose      bool
}

// Model implements the Bubble Tea model for the bookmark popup.
type Model struct {
	bookmarks *bookmark.Service
	feedback  *feedback.Service
	text      *i18n.Localizer
	autofill  autofill.Source
	openURL   func(string) error

	backend    *backend.Watcher
	store      state.BookmarkStore
	dispatcher *dispatcher.Dispatcher
	bus        *command.Bus

	language string
	focus    Control
	inputs   map[Control]*textinput.Model
	list     uistate.List
	entries  []renderedEntry
	modal    *modal

	loading      bool
	pendingID    string
	pendingLabel string
	errMsg       string
	infoMsg      string
	infoExpire   time.Time

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	keys keyMap
	help help.Model

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI state. Bookmarks and the language are loaded
// by the commands returned from Init.
func NewModel(opts Options) *Model {
	localizer := opts.Localizer
	if localizer == nil {
		localizer = i18n.New()
	}
	fb := opts.Feedback
	if fb == nil {
		fb = feedback.NewService()
	}
	store := state.NewBookmarkStore()
	m := &Model{
		bookmarks:  opts.Bookmarks,
		feedback:   fb,
		text:       localizer,
		autofill:   opts.Autofill,
		openURL:    opts.OpenURL,
		backend:    opts.Watcher,
		store:      store,
		dispatcher: dispatcher.New(store),
		bus:        command.New(opts.StoreTimeout),
		language:   i18n.DefaultLanguage,
		inputs:     newInputs(),
		showFooter: opts.ShowFooter,
		verbose:    opts.Verbose,
		keys:       defaultKeyMap(),
		help:       help.New(),
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.entries = m.renderEntries(nil)
	m.resizeInputs()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadLanguageCmd(), m.loadBookmarksCmd()}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if cmd := m.setFocus(ControlTitle); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	if m.focus.isTextField() && m.modal == nil {
		return m, m.updateInput(m.focus, msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):         m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):  m.handleWindowSizeMsg,
		reflect.TypeOf(languageLoadedMsg{}):  m.handleLanguageLoadedMsg,
		reflect.TypeOf(languageSavedMsg{}):   m.handleLanguageSavedMsg,
		reflect.TypeOf(bookmarksLoadedMsg{}): m.handleBookmarksLoadedMsg,
		reflect.TypeOf(feedbackSentMsg{}):    m.handleFeedbackSentMsg,
		reflect.TypeOf(autofillResultMsg{}):  m.handleAutofillResultMsg,
		reflect.TypeOf(ActionResult{}):       m.handleActionResultMsg,
		reflect.TypeOf(backendEventMsg{}):    m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):     m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// Language reports the language the static labels are rendered in.
func (m *Model) Language() string {
	return m.language
}

// label resolves a static label in the current language.
func (m *Model) label(key string) string {
	return m.text.Text(m.language, key)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	m.help.Width = m.width
	m.resizeInputs()
	return nil
}

// inputChrome is the width taken by the focus marker, label column and gap.
const inputChrome = 16

func (m *Model) resizeInputs() {
	if m.width <= inputChrome {
		return
	}
	for _, c := range textFields {
		m.inputs[c].Width = m.width - inputChrome
	}
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(3 * time.Second)
}

func (m *Model) currentInfo() string {
	if m.infoMsg == "" {
		return ""
	}
	if !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		return ""
	}
	return m.infoMsg
}
