package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/notes/internal/prefs"
	"github.com/nhle/notes/internal/theme"
)

// themeLoadedMsg carries the persisted theme preference.
type themeLoadedMsg struct {
	theme prefs.Theme
	err   error
}

// themeSavedMsg reports whether the preference was written.
type themeSavedMsg struct {
	err error
}

func (m Model) loadTheme() tea.Cmd {
	kv := m.kv
	return func() tea.Msg {
		t, err := prefs.LoadTheme(context.Background(), kv)
		return themeLoadedMsg{theme: t, err: err}
	}
}

func (m Model) saveTheme(t prefs.Theme) tea.Cmd {
	kv := m.kv
	return func() tea.Msg {
		return themeSavedMsg{err: prefs.SaveTheme(context.Background(), kv, t)}
	}
}

// setTheme applies t to the colour palette and the markdown renderer.
func (m *Model) setTheme(t prefs.Theme) {
	m.theme = t
	theme.Apply(t, m.systemDark)
	m.detail.SetGlamourStyle(theme.GlamourStyle(t, m.systemDark))
	m.helpView.SetTheme(t)
}

// cycleTheme moves to the next preference and persists it.
func (m *Model) cycleTheme() tea.Cmd {
	next := m.theme.Next()
	m.setTheme(next)
	m.setStatus("Theme: "+string(next), false)
	return m.saveTheme(next)
}
