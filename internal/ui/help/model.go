package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/notes/internal/keys"
	"github.com/nhle/notes/internal/model"
	"github.com/nhle/notes/internal/prefs"
	"github.com/nhle/notes/internal/theme"
)

// sectionTitles names the groups returned by KeyMap.FullHelp, in order.
var sectionTitles = []string{"Navigate", "Views", "Notes", "General"}

// Model is the help overlay view.
type Model struct {
	keys   *keys.KeyMap
	help   help.Model
	theme  prefs.Theme
	width  int
	height int
}

// New creates a new help view model.
func New(keys *keys.KeyMap, width, height int) Model {
	h := help.New()
	h.Width = width
	return Model{
		keys:   keys,
		help:   h,
		theme:  prefs.ThemeSystem,
		width:  width,
		height: height,
	}
}

// SetTheme records the active theme preference shown in the footer.
func (m *Model) SetTheme(t prefs.Theme) {
	m.theme = t
}

// Update handles messages for the help view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

// View renders the help overlay.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorBlue)

	m.help.Width = m.width - 4

	parts := []string{titleStyle.Render("Keyboard Shortcuts")}
	for i, group := range m.keys.FullHelp() {
		title := "More"
		if i < len(sectionTitles) {
			title = sectionTitles[i]
		}
		parts = append(parts,
			sectionStyle.Render(title),
			m.help.FullHelpView([][]key.Binding{group}),
			"",
		)
	}

	footer := theme.HelpStyle.Render(
		"theme: " + string(m.theme) + "   views: " + strings.Join(viewNames(), ", "),
	)
	parts = append(parts, footer)

	return theme.DetailPanelStyle.
		Width(m.width - 4).
		Height(m.height - 4).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func viewNames() []string {
	names := make([]string, len(model.Views))
	for i, v := range model.Views {
		names[i] = string(v)
	}
	return names
}

// SetSize updates the help view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width - 4
}
