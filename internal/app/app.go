package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/nhle/notes/internal/keys"
	"github.com/nhle/notes/internal/model"
	"github.com/nhle/notes/internal/notes"
	"github.com/nhle/notes/internal/prefs"
	"github.com/nhle/notes/internal/store"
	"github.com/nhle/notes/internal/ui"
	"github.com/nhle/notes/internal/ui/command"
	configview "github.com/nhle/notes/internal/ui/config"
	"github.com/nhle/notes/internal/ui/confirm"
	"github.com/nhle/notes/internal/ui/detail"
	helpview "github.com/nhle/notes/internal/ui/help"
	"github.com/nhle/notes/internal/ui/noteform"
	"github.com/nhle/notes/internal/ui/notelist"
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewList ViewState = iota
	ViewDetail
	ViewHelp
	ViewCommand
	ViewNoteCreate
	ViewNoteEdit
	ViewConfirm
	ViewSettings
)

// Options configures the root model.
type Options struct {
	// DefaultColor preselects the colour picker for new notes.
	DefaultColor model.Color
	// SystemDark reports whether the terminal background is dark; it is
	// used when the theme preference is "system".
	SystemDark bool
	// ConfigPath and Config back the settings view.
	ConfigPath string
	Config     model.AppConfig
	Logger     *zap.Logger
}

// Model is the root Bubble Tea model that manages view routing,
// layout, and access to the note store.
type Model struct {
	currentView  ViewState
	previousView ViewState
	layout       ui.Layout
	notes        *notes.Store
	kv           store.KV
	log          *zap.Logger
	keys         *keys.KeyMap
	noteList     notelist.Model
	detail       detail.Model
	helpView     helpview.Model
	commandView  command.Model
	noteForm     noteform.Model
	confirmView  confirm.Model
	configView   configview.Model
	theme        prefs.Theme
	systemDark   bool
	status       string
	statusErr    bool
	ready        bool
}

// New creates a new root application model. s must already be loaded;
// kv holds the theme preference.
func New(s *notes.Store, kv store.KV, opts Options) Model {
	k := keys.DefaultKeyMap()
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	nl := notelist.New(s, k, 80, 24)
	nl.Refresh()

	return Model{
		currentView: ViewList,
		notes:       s,
		kv:          kv,
		log:         log,
		keys:        k,
		noteList:    nl,
		detail:      detail.New(k, 80, 24),
		helpView:    helpview.New(k, 80, 24),
		commandView: command.New(80, 24),
		noteForm:    noteform.New(opts.DefaultColor, 80, 24),
		confirmView: confirm.New(80, 24),
		configView:  configview.New(opts.ConfigPath, opts.Config, 80, 24),
		theme:       prefs.ThemeSystem,
		systemDark:  opts.SystemDark,
	}
}

// Init loads the theme preference.
func (m Model) Init() tea.Cmd {
	return m.loadTheme()
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		contentWidth := m.layout.ContentWidth()
		contentHeight := m.layout.ContentHeight()
		m.noteList.SetSize(contentWidth, contentHeight)
		m.detail.SetSize(contentWidth, contentHeight)
		m.helpView.SetSize(contentWidth, contentHeight)
		m.commandView.SetSize(contentWidth, contentHeight)
		m.noteForm.SetSize(contentWidth, contentHeight)
		m.confirmView.SetSize(contentWidth, contentHeight)
		m.configView.SetSize(contentWidth, contentHeight)
		// Forward to active view so huh forms can calculate their layout.
		return m.updateActiveView(msg)

	case themeLoadedMsg:
		if msg.err != nil {
			m.log.Warn("loading theme preference", zap.Error(msg.err))
		}
		m.setTheme(msg.theme)
		return m, nil

	case themeSavedMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("Could not save theme: %v", msg.err), true)
		}
		return m, nil

	case noteActionMsg:
		return m, m.handleActionResult(msg)

	case notelist.SelectedNoteMsg:
		n, ok := m.notes.Get(msg.NoteID)
		if !ok {
			return m, nil
		}
		m.previousView = m.currentView
		m.currentView = ViewDetail
		m.detail.SetNote(&n)
		return m, nil

	case detail.BackMsg:
		m.currentView = ViewList
		return m, nil

	case noteform.NoteCreatedMsg:
		m.currentView = ViewList
		return m, m.createNote(msg.Draft)

	case noteform.NoteUpdatedMsg:
		m.currentView = m.previousView
		if m.currentView == ViewNoteEdit || m.currentView == ViewNoteCreate {
			m.currentView = ViewList
		}
		return m, m.editNote(msg.ID, msg.Draft)

	case noteform.NoteFormCancelMsg:
		m.currentView = m.previousView
		if m.currentView == ViewNoteEdit || m.currentView == ViewNoteCreate {
			m.currentView = ViewList
		}
		return m, nil

	case confirm.ResultMsg:
		m.currentView = m.previousView
		if !msg.Confirmed {
			return m, nil
		}
		switch msg.Action {
		case confirm.ActionClearAll:
			m.currentView = ViewList
			return m, m.clearAll()
		case confirm.ActionDeleteForever:
			if m.currentView == ViewDetail {
				m.currentView = ViewList
			}
			return m, m.removeForever(msg.NoteID)
		}
		return m, nil

	case configview.ConfigSavedMsg:
		m.currentView = ViewList
		if msg.Err != nil {
			m.log.Warn("saving settings", zap.Error(msg.Err))
			m.setStatus("Could not save settings: "+msg.Err.Error(), true)
			return m, nil
		}
		m.noteForm.SetDefaultColor(model.Color(msg.Config.Display.DefaultColor))
		m.setStatus("Settings saved", false)
		return m, nil

	case configview.ConfigDoneMsg:
		m.currentView = ViewList
		return m, nil

	case command.CommandMsg:
		m.currentView = m.previousView
		return m, m.executeCommand(msg)

	case command.ErrorMsg:
		m.currentView = m.previousView
		m.setStatus(msg.Err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.capturesInput() {
			break
		}
		if next, cmd, handled := m.handleGlobalKey(msg); handled {
			return next, cmd
		}
	}

	// Delegate to active sub-view
	return m.updateActiveView(msg)
}

// capturesInput reports whether the active view consumes plain keystrokes
// as text, so global shortcuts must not fire.
func (m Model) capturesInput() bool {
	switch m.currentView {
	case ViewNoteCreate, ViewNoteEdit, ViewConfirm, ViewSettings:
		return true
	case ViewCommand:
		return true
	case ViewList:
		return m.noteList.Searching()
	}
	return false
}

// handleGlobalKey processes application-level shortcuts for the list,
// detail and help views.
func (m Model) handleGlobalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.currentView == ViewList {
			return m, tea.Quit, true
		}

	case key.Matches(msg, m.keys.Help):
		if m.currentView == ViewHelp {
			m.currentView = m.previousView
			return m, nil, true
		}
		m.previousView = m.currentView
		m.currentView = ViewHelp
		return m, nil, true

	case key.Matches(msg, m.keys.Command):
		m.previousView = m.currentView
		m.currentView = ViewCommand
		return m, m.commandView.Focus(), true

	case key.Matches(msg, m.keys.Back):
		if m.currentView == ViewHelp {
			m.currentView = m.previousView
			return m, nil, true
		}

	case key.Matches(msg, m.keys.CycleTheme):
		return m, m.cycleTheme(), true

	case key.Matches(msg, m.keys.ClearAll):
		if m.currentView == ViewList {
			return m.askConfirm(confirm.ActionClearAll, model.Note{})
		}

	case key.Matches(msg, m.keys.Settings):
		if m.currentView == ViewList {
			m.previousView = m.currentView
			m.currentView = ViewSettings
			return m, m.configView.Start(), true
		}

	case key.Matches(msg, m.keys.New):
		if m.currentView == ViewList || m.currentView == ViewDetail {
			return m.startCreate()
		}
	}

	if m.currentView != ViewList && m.currentView != ViewDetail {
		return m, nil, false
	}
	n, ok := m.targetNote()
	if !ok {
		return m, nil, false
	}

	switch {
	case key.Matches(msg, m.keys.Edit):
		if n.Trashed {
			m.setStatus("Restore the note before editing it.", true)
			return m, nil, true
		}
		if n.Archived {
			m.setStatus("Unarchive the note before editing it.", true)
			return m, nil, true
		}
		m.previousView = m.currentView
		m.currentView = ViewNoteEdit
		return m, m.noteForm.StartEdit(n), true

	case key.Matches(msg, m.keys.Pin):
		if n.Trashed {
			return m, nil, true
		}
		return m, m.togglePinned(n.ID), true

	case key.Matches(msg, m.keys.Archive):
		if n.Trashed {
			return m, nil, true
		}
		return m, m.toggleArchived(n.ID), true

	case key.Matches(msg, m.keys.Delete):
		if n.Trashed {
			return m.askConfirm(confirm.ActionDeleteForever, n)
		}
		return m, m.trash(n.ID), true

	case key.Matches(msg, m.keys.Restore):
		if !n.Trashed {
			return m, nil, true
		}
		return m, m.restore(n.ID), true
	}

	return m, nil, false
}

// targetNote is the note an action key applies to: the open note in the
// detail view, otherwise the highlighted list row.
func (m Model) targetNote() (model.Note, bool) {
	if m.currentView == ViewDetail {
		shown, ok := m.detail.Note()
		if !ok {
			return model.Note{}, false
		}
		return m.notes.Get(shown.ID)
	}
	return m.noteList.SelectedNote()
}

func (m Model) startCreate() (tea.Model, tea.Cmd, bool) {
	m.previousView = m.currentView
	m.currentView = ViewNoteCreate
	return m, m.noteForm.StartCreate(), true
}

func (m Model) askConfirm(action confirm.Action, n model.Note) (tea.Model, tea.Cmd, bool) {
	m.previousView = m.currentView
	m.currentView = ViewConfirm
	return m, m.confirmView.Ask(action, n.ID, n.Title), true
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewList:
		m.noteList, cmd = m.noteList.Update(msg)
	case ViewDetail:
		m.detail, cmd = m.detail.Update(msg)
	case ViewHelp:
		m.helpView, cmd = m.helpView.Update(msg)
	case ViewCommand:
		if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, m.keys.Back) {
			m.currentView = m.previousView
			return m, nil
		}
		m.commandView, cmd = m.commandView.Update(msg)
	case ViewNoteCreate, ViewNoteEdit:
		m.noteForm, cmd = m.noteForm.Update(msg)
	case ViewConfirm:
		m.confirmView, cmd = m.confirmView.Update(msg)
	case ViewSettings:
		m.configView, cmd = m.configView.Update(msg)
	}

	return m, cmd
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader("Notes", "theme: "+string(m.theme))
	tabs := m.layout.RenderViewTabs(m.noteList.CurrentView(), m.noteList.Counts())
	content := m.renderContent()
	statusBar := m.layout.RenderStatusBar(m.statusLine())

	return m.layout.RenderWithFrame(header, tabs, content, statusBar)
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewList:
		return m.noteList.View()
	case ViewDetail:
		return m.detail.View()
	case ViewHelp:
		return m.helpView.View()
	case ViewCommand:
		return m.commandView.View()
	case ViewNoteCreate, ViewNoteEdit:
		return m.noteForm.View()
	case ViewConfirm:
		return m.confirmView.View()
	case ViewSettings:
		return m.configView.View()
	default:
		return ""
	}
}

// setStatus shows msg in the status bar until the next action.
func (m *Model) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusErr = isErr
}

// statusLine returns the last status message, or keyboard hints.
func (m Model) statusLine() string {
	if m.status != "" && (m.currentView == ViewList || m.currentView == ViewDetail) {
		return m.status
	}
	return m.keyHints()
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	switch m.currentView {
	case ViewHelp:
		return "? close help | esc back"
	case ViewCommand:
		return "enter execute | tab complete | esc back"
	case ViewDetail:
		if n, ok := m.targetNote(); ok && n.Trashed {
			return "esc back | u restore | d delete forever | j/k scroll"
		} else if ok && n.Archived {
			return "esc back | a unarchive | p pin | d trash | j/k scroll"
		}
		return "esc back | e edit | p pin | a archive | d trash | j/k scroll"
	case ViewNoteCreate, ViewNoteEdit:
		if m.noteForm.Editing() {
			return "enter save changes | esc cancel"
		}
		return "enter create | esc cancel"
	case ViewConfirm:
		return "←/→ choose | enter confirm | esc cancel"
	case ViewSettings:
		return "enter next/save | esc cancel"
	default:
		if m.noteList.Searching() {
			return "enter keep search | esc clear"
		}
		if m.noteList.CurrentView() == model.ViewTrash {
			return "u restore | d delete forever | X clear all | ? help"
		}
		return "q quit | ? help | n new | / search | 1-4 views | p pin | a archive | d trash"
	}
}

// executeCommand handles a command from the command palette.
func (m *Model) executeCommand(c command.CommandMsg) tea.Cmd {
	switch c.Name {
	case command.CmdAll:
		m.currentView = ViewList
		return m.noteList.SetView(model.ViewAll)
	case command.CmdPinned:
		m.currentView = ViewList
		return m.noteList.SetView(model.ViewPinned)
	case command.CmdArchived:
		m.currentView = ViewList
		return m.noteList.SetView(model.ViewArchived)
	case command.CmdTrash:
		m.currentView = ViewList
		return m.noteList.SetView(model.ViewTrash)
	case command.CmdSearch:
		m.currentView = ViewList
		return m.noteList.SetSearch(c.Arg)
	case command.CmdNew:
		m.previousView = ViewList
		m.currentView = ViewNoteCreate
		return m.noteForm.StartCreate()
	case command.CmdClear:
		m.previousView = ViewList
		m.currentView = ViewConfirm
		return m.confirmView.Ask(confirm.ActionClearAll, "", "")
	case command.CmdTheme:
		if c.Arg == "" {
			return m.cycleTheme()
		}
		t, err := prefs.ParseTheme(c.Arg)
		if err != nil {
			m.setStatus(err.Error(), true)
			return nil
		}
		m.setTheme(t)
		return m.saveTheme(t)
	case command.CmdSettings:
		m.previousView = ViewList
		m.currentView = ViewSettings
		return m.configView.Start()
	case command.CmdHelp:
		m.previousView = m.currentView
		m.currentView = ViewHelp
		return nil
	case command.CmdQuit:
		return tea.Quit
	default:
		return nil
	}
}
