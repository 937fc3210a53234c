package notelist

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/notes/internal/keys"
	"github.com/nhle/notes/internal/model"
	"github.com/nhle/notes/internal/notes"
	"github.com/nhle/notes/internal/theme"
)

// SelectedNoteMsg is sent when the user opens a note.
type SelectedNoteMsg struct {
	NoteID string
}

// Model is the note list for the active view and search term.
type Model struct {
	list        list.Model
	store       *notes.Store
	keys        *keys.KeyMap
	view        model.View
	search      string
	searchMode  bool
	searchInput textinput.Model
	width       int
	height      int
}

// New creates a new note list model showing the "all" view.
func New(s *notes.Store, k *keys.KeyMap, width, height int) Model {
	l := list.New([]list.Item{}, NoteDelegate{}, width, height-1)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	si := textinput.New()
	si.Placeholder = "search title or description..."
	si.Prompt = "/ "
	si.Width = width - 4

	return Model{
		list:        l,
		store:       s,
		keys:        k,
		view:        model.ViewAll,
		searchInput: si,
		width:       width,
		height:      height,
	}
}

// Refresh recomputes the visible notes from the store.
func (m *Model) Refresh() tea.Cmd {
	visible := notes.ComputeView(m.store.Notes(), m.view, m.search)
	items := make([]list.Item, len(visible))
	for i, n := range visible {
		items[i] = NoteItem{Note: n}
	}
	return m.list.SetItems(items)
}

// SetView switches the active view and refreshes.
func (m *Model) SetView(v model.View) tea.Cmd {
	m.view = v
	m.list.ResetSelected()
	return m.Refresh()
}

// CurrentView returns the active view.
func (m Model) CurrentView() model.View {
	return m.view
}

// Search returns the active search term.
func (m Model) Search() string {
	return m.search
}

// SetSearch replaces the search term and refreshes.
func (m *Model) SetSearch(term string) tea.Cmd {
	m.search = term
	m.searchInput.SetValue(term)
	return m.Refresh()
}

// Searching reports whether the search input has focus.
func (m Model) Searching() bool {
	return m.searchMode
}

// Visible returns the notes currently shown.
func (m Model) Visible() []model.Note {
	items := m.list.Items()
	out := make([]model.Note, 0, len(items))
	for _, it := range items {
		if ni, ok := it.(NoteItem); ok {
			out = append(out, ni.Note)
		}
	}
	return out
}

// SelectedNote returns the highlighted note, if any.
func (m Model) SelectedNote() (model.Note, bool) {
	ni, ok := m.list.SelectedItem().(NoteItem)
	if !ok {
		return model.Note{}, false
	}
	return ni.Note, true
}

// Counts returns how many notes each view shows without a search term.
func (m Model) Counts() map[model.View]int {
	all := m.store.Notes()
	counts := make(map[model.View]int, len(model.Views))
	for _, v := range model.Views {
		counts[v] = len(notes.ComputeView(all, v, ""))
	}
	return counts
}

// Update handles messages for the note list.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if m.searchMode {
			return m.handleSearchKeys(msg)
		}
		return m.handleNormalKeys(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// handleSearchKeys filters as the user types; enter keeps the term and
// esc clears it.
func (m Model) handleSearchKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchMode = false
		m.searchInput.Blur()
		return m, nil

	case "esc":
		m.searchMode = false
		m.searchInput.Blur()
		m.searchInput.Reset()
		m.search = ""
		return m, m.Refresh()
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if v := m.searchInput.Value(); v != m.search {
		m.search = v
		m.list.ResetSelected()
		return m, tea.Batch(cmd, m.Refresh())
	}
	return m, cmd
}

func (m Model) handleNormalKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		n, ok := m.SelectedNote()
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg { return SelectedNoteMsg{NoteID: n.ID} }

	case key.Matches(msg, m.keys.Search):
		m.searchMode = true
		m.searchInput.SetValue(m.search)
		m.searchInput.CursorEnd()
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.Back):
		if m.search != "" {
			return m, m.SetSearch("")
		}
		return m, nil

	case key.Matches(msg, m.keys.ViewAll):
		return m, m.SetView(model.ViewAll)
	case key.Matches(msg, m.keys.ViewPinned):
		return m, m.SetView(model.ViewPinned)
	case key.Matches(msg, m.keys.ViewArchived):
		return m, m.SetView(model.ViewArchived)
	case key.Matches(msg, m.keys.ViewTrash):
		return m, m.SetView(model.ViewTrash)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the search bar (when active) above the notes or the empty
// state.
func (m Model) View() string {
	var body string
	if len(m.list.Items()) == 0 {
		body = m.renderEmptyState()
	} else {
		body = m.list.View()
	}

	if !m.searchMode && m.search == "" {
		return body
	}

	searchBar := lipgloss.NewStyle().
		Foreground(theme.ColorWhite).
		Padding(0, 1).
		Render(m.searchInput.View())
	return lipgloss.JoinVertical(lipgloss.Left, searchBar, body)
}

func (m Model) renderEmptyState() string {
	title, hint := EmptyState(m.view, m.search, m.Visible())

	style := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height - 1).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.ColorGray)

	heading := lipgloss.NewStyle().Bold(true).Render(title)
	return style.Render(heading + "\n" + hint)
}

// EmptyState returns the heading and hint shown when a view has nothing
// to display. A search that matched nothing takes precedence over the
// per-view message.
func EmptyState(view model.View, search string, results []model.Note) (string, string) {
	if notes.NoSearchResults(results, search) {
		return "No results found", "Try adjusting your search terms."
	}

	switch view {
	case model.ViewPinned:
		return "No pinned notes", "Pin important notes to see them here."
	case model.ViewArchived:
		return "Nothing archived", "Archived notes will appear here."
	case model.ViewTrash:
		return "Trash is empty", "Deleted notes will appear here."
	default:
		return "No notes found", "You don't have any notes yet. Start by adding a new note!"
	}
}

// SetSize updates the list dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height-1)
	m.searchInput.Width = width - 4
}
