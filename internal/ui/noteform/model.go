package noteform

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/notes/internal/model"
	"github.com/nhle/notes/internal/theme"
)

// NoteCreatedMsg is dispatched when the form is submitted for a new note.
type NoteCreatedMsg struct {
	Draft model.Draft
}

// NoteUpdatedMsg is dispatched when the form is submitted for an
// existing note.
type NoteUpdatedMsg struct {
	ID    string
	Draft model.Draft
}

// NoteFormCancelMsg is dispatched when the user cancels the form.
type NoteFormCancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	title       string
	description string
	tags        string
	color       model.Color
}

// Model is the Bubble Tea model for the note create/edit form.
type Model struct {
	form         *huh.Form
	fb           *formBindings
	editMode     bool
	editID       string
	defaultColor model.Color
	width        int
	height       int
}

// New creates a new note form model. defaultColor preselects the colour
// picker for new notes.
func New(defaultColor model.Color, width, height int) Model {
	if !defaultColor.Valid() {
		defaultColor = model.DefaultColor
	}
	return Model{
		fb:           &formBindings{color: defaultColor},
		defaultColor: defaultColor,
		width:        width,
		height:       height,
	}
}

// StartCreate initializes the form for a new note.
func (m *Model) StartCreate() tea.Cmd {
	m.editMode = false
	m.editID = ""
	m.fb.title = ""
	m.fb.description = ""
	m.fb.tags = ""
	m.fb.color = m.defaultColor
	m.form = m.buildForm()
	return m.form.Init()
}

// StartEdit initializes the form with the fields of an existing note.
func (m *Model) StartEdit(n model.Note) tea.Cmd {
	m.editMode = true
	m.editID = n.ID
	m.fb.title = n.Title
	m.fb.description = n.Description
	m.fb.tags = strings.Join(n.Tags, ", ")
	m.fb.color = n.LabelColor()
	m.form = m.buildForm()
	return m.form.Init()
}

// SetDefaultColor changes the colour preselected for new notes.
func (m *Model) SetDefaultColor(c model.Color) {
	if c.Valid() {
		m.defaultColor = c
	}
}

// Editing reports whether the form edits an existing note.
func (m Model) Editing() bool {
	return m.editMode
}

// Update handles messages for the note form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m, m.handleSubmit()
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return NoteFormCancelMsg{} }
	}

	return m, cmd
}

// View renders the note form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleText := "New Note"
	if m.editMode {
		titleText = "Edit Note"
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	content := titleStyle.Render(titleText) + "\n" + m.form.View()

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(content)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) buildForm() *huh.Form {
	colors := make([]huh.Option[model.Color], len(model.Colors))
	for i, c := range model.Colors {
		swatch := theme.SwatchStyle(c).Render("●")
		colors[i] = huh.NewOption(swatch+" "+string(c), c)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Title").
				Value(&m.fb.title).
				Validate(validateRequired("Title")),
			huh.NewText().
				Title("Description").
				Placeholder("Description").
				Value(&m.fb.description).
				Validate(validateRequired("Description")),
			huh.NewInput().
				Title("Tags").
				Placeholder("Tags (comma-separated)").
				Value(&m.fb.tags),
			huh.NewSelect[model.Color]().
				Title("Label color").
				Options(colors...).
				Value(&m.fb.color),
		),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m Model) handleSubmit() tea.Cmd {
	d := m.Draft()
	if m.editMode {
		id := m.editID
		return func() tea.Msg { return NoteUpdatedMsg{ID: id, Draft: d} }
	}
	return func() tea.Msg { return NoteCreatedMsg{Draft: d} }
}

// Draft returns the current field values as a draft.
func (m Model) Draft() model.Draft {
	return model.Draft{
		Title:       m.fb.title,
		Description: m.fb.description,
		Tags:        model.ParseTags(m.fb.tags),
		Color:       m.fb.color,
	}
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 100 {
		w = 100
	}
	return w
}

func (m Model) formHeight() int {
	h := m.height - 4
	if h < 10 {
		h = 10
	}
	return h
}

func validateRequired(fieldName string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", fieldName)
		}
		return nil
	}
}
