package config

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/notes/internal/model"
	"github.com/nhle/notes/internal/theme"
)

// ConfigSavedMsg is dispatched after the settings were written.
type ConfigSavedMsg struct {
	Config model.AppConfig
	Err    error
}

// ConfigDoneMsg is dispatched when the user leaves without saving.
type ConfigDoneMsg struct{}

// settingsBindings keeps the huh Value pointers stable across model copies.
type settingsBindings struct {
	color    model.Color
	logLevel string
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Model edits the user-facing part of the config file.
type Model struct {
	path   string
	cfg    model.AppConfig
	form   *huh.Form
	fb     *settingsBindings
	width  int
	height int
}

// New creates a settings view writing to path.
func New(path string, cfg model.AppConfig, width, height int) Model {
	return Model{
		path:   path,
		cfg:    cfg,
		fb:     &settingsBindings{},
		width:  width,
		height: height,
	}
}

// Start builds the form from the current configuration.
func (m *Model) Start() tea.Cmd {
	m.fb.color = model.Color(m.cfg.Display.DefaultColor)
	if !m.fb.color.Valid() {
		m.fb.color = model.DefaultColor
	}
	m.fb.logLevel = m.cfg.Log.Level
	if m.fb.logLevel == "" {
		m.fb.logLevel = "info"
	}

	colors := make([]huh.Option[model.Color], len(model.Colors))
	for i, c := range model.Colors {
		colors[i] = huh.NewOption(theme.SwatchStyle(c).Render("●")+" "+string(c), c)
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[model.Color]().
				Title("Default label color").
				Description("Preselected for new notes").
				Options(colors...).
				Value(&m.fb.color),
			huh.NewSelect[string]().
				Title("Log level").
				Description("Takes effect on next start").
				Options(huh.NewOptions(logLevels...)...).
				Value(&m.fb.logLevel),
		),
	).WithWidth(m.formWidth())

	return m.form.Init()
}

// Config returns the configuration the view was last saved with.
func (m Model) Config() model.AppConfig {
	return m.cfg
}

// Update handles messages for the settings view.
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
		m.form = nil
		next := m.cfg
		next.Display.DefaultColor = string(m.fb.color)
		next.Log.Level = m.fb.logLevel
		m.cfg = next
		return m, m.save(next)
	case huh.StateAborted:
		m.form = nil
		return m, func() tea.Msg { return ConfigDoneMsg{} }
	}
	return m, cmd
}

func (m Model) save(cfg model.AppConfig) tea.Cmd {
	path := m.path
	return func() tea.Msg {
		err := model.SaveConfig(path, &cfg)
		return ConfigSavedMsg{Config: cfg, Err: err}
	}
}

// View renders the settings form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		Render("Settings")
	where := theme.DimmedStyle.Render(m.path)

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, where, "", m.form.View()))
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 80 {
		w = 80
	}
	return w
}
