package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/notes/internal/model"
	"github.com/nhle/notes/internal/prefs"
)

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorBlue    = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorGreen   = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow  = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed     = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorMagenta = lipgloss.AdaptiveColor{Dark: "#CC5DE8", Light: "#805AD5"}
	ColorGray    = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorWhite   = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
	ColorSubtle  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#CBD5E0"}
	ColorBorder  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

// labelColors maps note label colours to their swatch.
var labelColors = map[model.Color]lipgloss.Color{
	model.ColorGreen:  lipgloss.Color("#43A047"),
	model.ColorBlue:   lipgloss.Color("#3B82F6"),
	model.ColorRed:    lipgloss.Color("#EF4444"),
	model.ColorYellow: lipgloss.Color("#F59E0B"),
	model.ColorPurple: lipgloss.Color("#8B5CF6"),
	model.ColorGray:   lipgloss.Color("#6B7280"),
}

// LabelColor returns the swatch for c, or the default colour's swatch.
func LabelColor(c model.Color) lipgloss.Color {
	if lc, ok := labelColors[c]; ok {
		return lc
	}
	return labelColors[model.DefaultColor]
}

// HeaderStyle is used for top-level section headers and the application title.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorBlue).
	Padding(0, 1)

// StatusBarStyle is used for the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Background(ColorSubtle).
	Padding(0, 1)

// DetailPanelStyle wraps the detail view content area.
var DetailPanelStyle = lipgloss.NewStyle().
	Padding(1, 2).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// ListItemStyle is the base style for items in a list.
var ListItemStyle = lipgloss.NewStyle().
	PaddingLeft(2)

// SelectedItemStyle highlights the currently focused list item.
var SelectedItemStyle = lipgloss.NewStyle().
	PaddingLeft(1).
	Bold(true).
	Foreground(ColorBlue).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderForeground(ColorBlue)

// HelpStyle is used for keyboard shortcut hints and help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// DimmedStyle renders archived and trashed notes.
var DimmedStyle = lipgloss.NewStyle().
	Foreground(ColorGray)

// ErrorStyle renders validation and persistence errors.
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorRed).
	Bold(true)

// SuccessStyle renders confirmations such as "Note saved".
var SuccessStyle = lipgloss.NewStyle().
	Foreground(ColorGreen).
	Bold(true)

// PinStyle renders the pin marker.
var PinStyle = lipgloss.NewStyle().
	Foreground(ColorYellow).
	Bold(true)

// ViewTabStyle returns the style of a view tab in the header row.
func ViewTabStyle(active bool) lipgloss.Style {
	base := lipgloss.NewStyle().Padding(0, 1)
	if active {
		return base.Bold(true).Foreground(ColorWhite).Background(ColorBlue)
	}
	return base.Foreground(ColorGray)
}

// TagStyle returns a badge style tinted with the note's label colour.
func TagStyle(c model.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(LabelColor(c)).
		Padding(0, 1)
}

// SwatchStyle returns the style of the colour dot in front of a note.
func SwatchStyle(c model.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(LabelColor(c)).Bold(true)
}

// Apply switches the adaptive colours to match the preference. For
// ThemeSystem the background detected from the terminal is restored.
func Apply(t prefs.Theme, systemDark bool) {
	switch t {
	case prefs.ThemeDark:
		lipgloss.SetHasDarkBackground(true)
	case prefs.ThemeLight:
		lipgloss.SetHasDarkBackground(false)
	default:
		lipgloss.SetHasDarkBackground(systemDark)
	}
}

// GlamourStyle names the glamour standard style matching the preference.
func GlamourStyle(t prefs.Theme, systemDark bool) string {
	switch t {
	case prefs.ThemeDark:
		return "dark"
	case prefs.ThemeLight:
		return "light"
	default:
		if systemDark {
			return "dark"
		}
		return "light"
	}
}
