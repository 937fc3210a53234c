package command

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/notes/internal/theme"
)

// Name identifies a palette command.
type Name string

const (
	CmdAll      Name = "all"
	CmdPinned   Name = "pinned"
	CmdArchived Name = "archived"
	CmdTrash    Name = "trash"
	CmdNew      Name = "new"
	CmdSearch   Name = "search"
	CmdClear    Name = "clear"
	CmdTheme    Name = "theme"
	CmdSettings Name = "settings"
	CmdHelp     Name = "help"
	CmdQuit     Name = "quit"
)

// Names lists the commands offered as completions.
var Names = []Name{
	CmdAll, CmdPinned, CmdArchived, CmdTrash,
	CmdNew, CmdSearch, CmdClear, CmdTheme, CmdSettings, CmdHelp, CmdQuit,
}

var aliases = map[string]Name{
	"q":      CmdQuit,
	"exit":   CmdQuit,
	"notes":  CmdAll,
	"add":    CmdNew,
	"find":   CmdSearch,
	"/":      CmdSearch,
	"?":      CmdHelp,
	"delete": CmdClear,
	"config": CmdSettings,
}

// CommandMsg is emitted when the user executes a command.
type CommandMsg struct {
	Name Name
	Arg  string
}

// Parse splits palette input into a command name and its argument.
func Parse(input string) (CommandMsg, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return CommandMsg{}, fmt.Errorf("empty command")
	}

	word, arg, _ := strings.Cut(input, " ")
	word = strings.ToLower(word)
	arg = strings.TrimSpace(arg)

	if a, ok := aliases[word]; ok {
		return CommandMsg{Name: a, Arg: arg}, nil
	}
	for _, n := range Names {
		if Name(word) == n {
			return CommandMsg{Name: n, Arg: arg}, nil
		}
	}
	return CommandMsg{}, fmt.Errorf("unknown command %q", word)
}

// ErrorMsg is emitted when the input does not name a command.
type ErrorMsg struct {
	Err error
}

// Model is the command palette view.
type Model struct {
	input  textinput.Model
	width  int
	height int
}

// New creates a new command palette model.
func New(width, height int) Model {
	ti := textinput.New()
	ti.Placeholder = "type a command..."
	ti.Prompt = ": "
	ti.ShowSuggestions = true
	ti.SetSuggestions(suggestions())
	ti.Focus()
	ti.Width = width - 6

	return Model{
		input:  ti,
		width:  width,
		height: height,
	}
}

func suggestions() []string {
	out := make([]string, 0, len(Names)+3)
	for _, n := range Names {
		out = append(out, string(n))
	}
	return append(out, "theme system", "theme light", "theme dark")
}

// Update handles messages for the command palette.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			raw := m.input.Value()
			m.input.Reset()
			if strings.TrimSpace(raw) == "" {
				return m, nil
			}
			parsed, err := Parse(raw)
			if err != nil {
				return m, func() tea.Msg { return ErrorMsg{Err: err} }
			}
			return m, func() tea.Msg { return parsed }
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the command palette.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	title := titleStyle.Render("Command Palette")
	input := m.input.View()

	names := make([]string, len(Names))
	for i, n := range Names {
		names[i] = string(n)
	}
	hint := theme.HelpStyle.Render(strings.Join(names, " · "))

	content := lipgloss.JoinVertical(lipgloss.Left, title, input, "", hint)

	return theme.DetailPanelStyle.
		Width(m.width - 4).
		Render(content)
}

// SetSize updates the command palette dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = width - 6
}

// Focus gives keyboard focus to the text input.
func (m *Model) Focus() tea.Cmd {
	m.input.Reset()
	return m.input.Focus()
}
