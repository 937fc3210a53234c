package detail

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/notes/internal/keys"
	"github.com/nhle/notes/internal/model"
	"github.com/nhle/notes/internal/theme"
)

// BackMsg signals the parent to navigate back to the list view.
type BackMsg struct{}

// Model shows one note in full, its description rendered as markdown.
type Model struct {
	note         *model.Note
	viewport     viewport.Model
	keys         *keys.KeyMap
	glamourStyle string
	width        int
	height       int
}

// New creates a new detail view model.
func New(keys *keys.KeyMap, width, height int) Model {
	vp := viewport.New(width, height)
	vp.Style = lipgloss.NewStyle()

	return Model{
		viewport:     vp,
		keys:         keys,
		glamourStyle: "dark",
		width:        width,
		height:       height,
	}
}

// SetNote shows n, or the empty placeholder when n is nil.
func (m *Model) SetNote(n *model.Note) {
	m.note = n
	m.viewport.SetContent(m.renderContent())
	m.viewport.GotoTop()
}

// Note returns the displayed note.
func (m Model) Note() (model.Note, bool) {
	if m.note == nil {
		return model.Note{}, false
	}
	return *m.note, true
}

// SetGlamourStyle selects the markdown style ("dark" or "light").
func (m *Model) SetGlamourStyle(style string) {
	m.glamourStyle = style
	if m.note != nil {
		m.viewport.SetContent(m.renderContent())
	}
}

// Update handles messages for the detail view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.Back) {
		return m, func() tea.Msg { return BackMsg{} }
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the detail view.
func (m Model) View() string {
	if m.note == nil {
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.ColorGray).
			Render("No note selected")
	}
	return m.viewport.View()
}

// renderContent builds the full detail content string for the viewport.
func (m Model) renderContent() string {
	if m.note == nil {
		return ""
	}
	n := m.note

	var b strings.Builder

	title := lipgloss.NewStyle().Bold(true).Render(n.Title)
	b.WriteString(theme.SwatchStyle(n.LabelColor()).Render("● ") + title + "\n")

	var flags []string
	if n.Pinned {
		flags = append(flags, "pinned")
	}
	if n.Archived {
		flags = append(flags, "archived")
	}
	if n.Trashed {
		flags = append(flags, "in trash")
	}
	meta := []string{string(n.LabelColor())}
	meta = append(meta, flags...)
	if !n.CreatedAt.IsZero() {
		meta = append(meta, "created "+n.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	b.WriteString(theme.DimmedStyle.Render(strings.Join(meta, " · ")) + "\n")

	if len(n.Tags) > 0 {
		style := theme.TagStyle(n.LabelColor())
		badges := make([]string, len(n.Tags))
		for i, t := range n.Tags {
			badges[i] = style.Render(t)
		}
		b.WriteString(strings.Join(badges, " ") + "\n")
	}

	b.WriteString(m.renderMarkdown(n.Description))
	return b.String()
}

// renderMarkdown falls back to the raw text when glamour cannot render.
func (m Model) renderMarkdown(text string) string {
	wrap := m.width - 4
	if wrap < 20 {
		wrap = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.glamourStyle),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return "\n" + text
	}
	out, err := r.Render(text)
	if err != nil {
		return "\n" + text
	}
	return out
}

// SetSize updates the detail view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	if m.note != nil {
		m.viewport.SetContent(m.renderContent())
	}
}
