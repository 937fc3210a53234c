package confirm

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/notes/internal/theme"
)

// Action is the destructive operation awaiting confirmation.
type Action int

const (
	ActionClearAll Action = iota
	ActionDeleteForever
)

// ResultMsg is dispatched once the user answers. NoteID is set for
// ActionDeleteForever.
type ResultMsg struct {
	Action    Action
	NoteID    string
	Confirmed bool
}

// answer lives on the heap so huh's Value pointer survives model copies.
type answer struct {
	yes bool
}

// Model asks a yes/no question before a destructive action.
type Model struct {
	form   *huh.Form
	ans    *answer
	action Action
	noteID string
	width  int
	height int
}

// New creates an idle confirmation dialog.
func New(width, height int) Model {
	return Model{
		ans:    &answer{},
		width:  width,
		height: height,
	}
}

// Ask starts a confirmation for action. noteID and title describe the
// note for ActionDeleteForever.
func (m *Model) Ask(action Action, noteID, title string) tea.Cmd {
	m.action = action
	m.noteID = noteID
	m.ans.yes = false

	question, desc := "Clear all notes?", "Every note, including trashed ones, is removed. This cannot be undone."
	if action == ActionDeleteForever {
		question = "Delete forever?"
		desc = "\"" + title + "\" will be removed permanently."
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(question).
				Description(desc).
				Affirmative("Delete").
				Negative("Cancel").
				Value(&m.ans.yes),
		),
	).WithWidth(m.formWidth())
	return m.form.Init()
}

// Update handles messages for the dialog.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		res := ResultMsg{Action: m.action, NoteID: m.noteID, Confirmed: m.ans.yes}
		m.form = nil
		return m, func() tea.Msg { return res }
	case huh.StateAborted:
		res := ResultMsg{Action: m.action, NoteID: m.noteID}
		m.form = nil
		return m, func() tea.Msg { return res }
	}
	return m, cmd
}

// View renders the dialog.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}
	return theme.DetailPanelStyle.
		BorderForeground(theme.ColorRed).
		Width(m.formWidth() + 4).
		Render(lipgloss.JoinVertical(lipgloss.Left, m.form.View()))
}

// SetSize updates the dialog dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) formWidth() int {
	w := m.width - 8
	if w > 60 {
		w = 60
	}
	if w < 30 {
		w = 30
	}
	return w
}
